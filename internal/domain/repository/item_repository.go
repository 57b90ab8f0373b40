package repository

import "github.com/jhoicas/Sucursales-api/internal/domain/entity"

// ItemRepository puerto de persistencia para el catálogo de artículos.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetBySKU(sku string) (*entity.Item, error)
	Update(item *entity.Item) error
	List(limit, offset int) ([]*entity.Item, error)
	Delete(id string) error
}
