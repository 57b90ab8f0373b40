package repository

import "github.com/jhoicas/Sucursales-api/internal/domain/entity"

// DistrictRepository puerto de persistencia para District (DIP).
type DistrictRepository interface {
	Create(district *entity.District) error
	GetByID(id string) (*entity.District, error)
	Update(district *entity.District) error
	ListByRegion(regionID string, limit, offset int) ([]*entity.District, error)
	List(limit, offset int) ([]*entity.District, error)
	Delete(id string) error
}
