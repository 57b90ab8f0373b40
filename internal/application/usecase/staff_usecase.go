package usecase

import (
	"time"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// StaffUseCase administración del personal (el alta pasa por auth.RegisterUser).
type StaffUseCase struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(userRepo repository.UserRepository, branchRepo repository.BranchRepository) *StaffUseCase {
	return &StaffUseCase{userRepo: userRepo, branchRepo: branchRepo}
}

// GetByID obtiene un usuario por ID.
func (uc *StaffUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toStaffResponse(user), nil
}

// ListByBranch lista el personal de una sucursal con paginación.
func (uc *StaffUseCase) ListByBranch(branchID string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.userRepo.ListByBranch(branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toStaffResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza nombre, rol, estado o sucursal de un usuario.
func (uc *StaffUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Role != nil {
		switch *in.Role {
		case entity.RoleAdmin, entity.RoleGerente, entity.RoleEmpleado:
			user.Role = *in.Role
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.BranchID != nil {
		if *in.BranchID != "" {
			branch, err := uc.branchRepo.GetByID(*in.BranchID)
			if err != nil {
				return nil, err
			}
			if branch == nil {
				return nil, domain.ErrNotFound
			}
		}
		user.BranchID = *in.BranchID
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toStaffResponse(user), nil
}

func toStaffResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		BranchID:  u.BranchID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
