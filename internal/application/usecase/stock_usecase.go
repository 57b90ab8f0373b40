package usecase

import (
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
	"github.com/jhoicas/Sucursales-api/internal/domain/stock"
)

// StockQueryUseCase consultas de existencias clasificadas (solo lectura).
// La clasificación se calcula al momento de leer, nunca se persiste.
type StockQueryUseCase struct {
	levels repository.StockLevelRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(levels repository.StockLevelRepository) *StockQueryUseCase {
	return &StockQueryUseCase{levels: levels}
}

// Get obtiene la existencia clasificada de un artículo en una sucursal.
func (uc *StockQueryUseCase) Get(itemID, branchID string) (*dto.StockLevelResponse, error) {
	level, err := uc.levels.Get(itemID, branchID)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return nil, nil
	}
	resp := toStockLevelResponse(level)
	return &resp, nil
}

// ListByBranch lista las existencias clasificadas de una sucursal.
func (uc *StockQueryUseCase) ListByBranch(branchID string, limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.levels.ListByBranch(branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockListResponse(list, limit, offset), nil
}

// ListAll lista existencias de todas las sucursales (vista de administrador).
func (uc *StockQueryUseCase) ListAll(limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.levels.ListAll(limit, offset)
	if err != nil {
		return nil, err
	}
	return toStockListResponse(list, limit, offset), nil
}

func toStockListResponse(list []*entity.StockLevel, limit, offset int) *dto.StockListResponse {
	items := make([]dto.StockLevelResponse, 0, len(list))
	for _, l := range list {
		items = append(items, toStockLevelResponse(l))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toStockLevelResponse(l *entity.StockLevel) dto.StockLevelResponse {
	return dto.StockLevelResponse{
		BranchID:       l.BranchID,
		ItemID:         l.ItemID,
		ItemName:       l.ItemName,
		Category:       l.Category,
		Quantity:       l.Quantity,
		ThresholdLevel: l.ThresholdLevel,
		Status:         string(stock.Classify(l.Quantity, l.ThresholdLevel)),
		UpdatedAt:      l.UpdatedAt,
	}
}
