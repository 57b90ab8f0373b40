package repository

import "github.com/jhoicas/Sucursales-api/internal/domain/entity"

// DeliveryRepository puerto de persistencia para entregas recibidas.
type DeliveryRepository interface {
	Create(delivery *entity.Delivery) error
	ListByBranch(branchID string, limit, offset int) ([]*entity.Delivery, error)
}
