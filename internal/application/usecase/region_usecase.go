package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// RegionUseCase casos de uso CRUD para regiones.
type RegionUseCase struct {
	repo repository.RegionRepository
}

// NewRegionUseCase construye el caso de uso.
func NewRegionUseCase(repo repository.RegionRepository) *RegionUseCase {
	return &RegionUseCase{repo: repo}
}

// Create crea una nueva región.
func (uc *RegionUseCase) Create(in dto.CreateRegionRequest) (*dto.RegionResponse, error) {
	now := time.Now()
	region := &entity.Region{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(region); err != nil {
		return nil, err
	}
	return toRegionResponse(region), nil
}

// GetByID obtiene una región por ID.
func (uc *RegionUseCase) GetByID(id string) (*dto.RegionResponse, error) {
	region, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, nil
	}
	return toRegionResponse(region), nil
}

// Update actualiza una región.
func (uc *RegionUseCase) Update(id string, in dto.UpdateRegionRequest) (*dto.RegionResponse, error) {
	region, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, nil
	}
	if in.Name != nil {
		region.Name = *in.Name
	}
	region.UpdatedAt = time.Now()
	if err := uc.repo.Update(region); err != nil {
		return nil, err
	}
	return toRegionResponse(region), nil
}

// List lista regiones con paginación.
func (uc *RegionUseCase) List(limit, offset int) (*dto.RegionListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RegionResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRegionResponse(r))
	}
	return &dto.RegionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una región por ID.
func (uc *RegionUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toRegionResponse(r *entity.Region) *dto.RegionResponse {
	if r == nil {
		return nil
	}
	return &dto.RegionResponse{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
