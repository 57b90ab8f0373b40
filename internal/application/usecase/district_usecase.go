package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// DistrictUseCase casos de uso CRUD para distritos; valida que la región padre exista.
type DistrictUseCase struct {
	repo       repository.DistrictRepository
	regionRepo repository.RegionRepository
}

// NewDistrictUseCase construye el caso de uso.
func NewDistrictUseCase(repo repository.DistrictRepository, regionRepo repository.RegionRepository) *DistrictUseCase {
	return &DistrictUseCase{repo: repo, regionRepo: regionRepo}
}

// Create crea un distrito dentro de una región existente.
func (uc *DistrictUseCase) Create(in dto.CreateDistrictRequest) (*dto.DistrictResponse, error) {
	region, err := uc.regionRepo.GetByID(in.RegionID)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	district := &entity.District{
		ID:        uuid.New().String(),
		RegionID:  in.RegionID,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(district); err != nil {
		return nil, err
	}
	return toDistrictResponse(district), nil
}

// GetByID obtiene un distrito por ID.
func (uc *DistrictUseCase) GetByID(id string) (*dto.DistrictResponse, error) {
	district, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if district == nil {
		return nil, nil
	}
	return toDistrictResponse(district), nil
}

// Update actualiza un distrito; si cambia de región, la nueva debe existir.
func (uc *DistrictUseCase) Update(id string, in dto.UpdateDistrictRequest) (*dto.DistrictResponse, error) {
	district, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if district == nil {
		return nil, nil
	}
	if in.RegionID != nil {
		region, err := uc.regionRepo.GetByID(*in.RegionID)
		if err != nil {
			return nil, err
		}
		if region == nil {
			return nil, domain.ErrNotFound
		}
		district.RegionID = *in.RegionID
	}
	if in.Name != nil {
		district.Name = *in.Name
	}
	district.UpdatedAt = time.Now()
	if err := uc.repo.Update(district); err != nil {
		return nil, err
	}
	return toDistrictResponse(district), nil
}

// List lista distritos, opcionalmente filtrados por región.
func (uc *DistrictUseCase) List(regionID string, limit, offset int) (*dto.DistrictListResponse, error) {
	var (
		list []*entity.District
		err  error
	)
	if regionID != "" {
		list, err = uc.repo.ListByRegion(regionID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.DistrictResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDistrictResponse(d))
	}
	return &dto.DistrictListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un distrito por ID.
func (uc *DistrictUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toDistrictResponse(d *entity.District) *dto.DistrictResponse {
	if d == nil {
		return nil
	}
	return &dto.DistrictResponse{
		ID:        d.ID,
		RegionID:  d.RegionID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
