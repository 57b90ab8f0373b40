package repository

import "github.com/jhoicas/Sucursales-api/internal/domain/entity"

// BranchRepository puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	Update(branch *entity.Branch) error
	ListByDistrict(districtID string, limit, offset int) ([]*entity.Branch, error)
	List(limit, offset int) ([]*entity.Branch, error)
	Delete(id string) error
}
