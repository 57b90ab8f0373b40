package repository

import "github.com/jhoicas/Sucursales-api/internal/domain/entity"

// UserRepository puerto de persistencia para el personal.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	ListByBranch(branchID string, limit, offset int) ([]*entity.User, error)
}
