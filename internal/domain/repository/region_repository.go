package repository

import "github.com/jhoicas/Sucursales-api/internal/domain/entity"

// RegionRepository puerto de persistencia para Region (DIP).
type RegionRepository interface {
	Create(region *entity.Region) error
	GetByID(id string) (*entity.Region, error)
	Update(region *entity.Region) error
	List(limit, offset int) ([]*entity.Region, error)
	Delete(id string) error
}
