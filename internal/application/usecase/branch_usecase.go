package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// BranchUseCase casos de uso CRUD para sucursales; valida que el distrito padre exista.
type BranchUseCase struct {
	repo         repository.BranchRepository
	districtRepo repository.DistrictRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository, districtRepo repository.DistrictRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo, districtRepo: districtRepo}
}

// Create crea una sucursal dentro de un distrito existente.
func (uc *BranchUseCase) Create(in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	district, err := uc.districtRepo.GetByID(in.DistrictID)
	if err != nil {
		return nil, err
	}
	if district == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:         uuid.New().String(),
		DistrictID: in.DistrictID,
		Name:       in.Name,
		Address:    in.Address,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal por ID.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	return toBranchResponse(branch), nil
}

// Update actualiza una sucursal; si cambia de distrito, el nuevo debe existir.
func (uc *BranchUseCase) Update(id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	if in.DistrictID != nil {
		district, err := uc.districtRepo.GetByID(*in.DistrictID)
		if err != nil {
			return nil, err
		}
		if district == nil {
			return nil, domain.ErrNotFound
		}
		branch.DistrictID = *in.DistrictID
	}
	if in.Name != nil {
		branch.Name = *in.Name
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List lista sucursales, opcionalmente filtradas por distrito.
func (uc *BranchUseCase) List(districtID string, limit, offset int) (*dto.BranchListResponse, error) {
	var (
		list []*entity.Branch
		err  error
	)
	if districtID != "" {
		list, err = uc.repo.ListByDistrict(districtID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return &dto.BranchListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una sucursal por ID.
func (uc *BranchUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:         b.ID,
		DistrictID: b.DistrictID,
		Name:       b.Name,
		Address:    b.Address,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
