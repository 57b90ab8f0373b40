package usecase

import (
	"sort"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
	"github.com/jhoicas/Sucursales-api/internal/domain/stock"
)

// ReportUseCase reportes de solo lectura: resumen por nivel de existencia y el
// historial de movimientos del libro mayor.
type ReportUseCase struct {
	levels    repository.StockLevelRepository
	movements repository.StockMovementRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	levels repository.StockLevelRepository,
	movements repository.StockMovementRepository,
) *ReportUseCase {
	return &ReportUseCase{levels: levels, movements: movements}
}

// StockSummary cuenta existencias por nivel y devuelve los renglones que requieren
// atención, ordenados por urgencia (critical primero) y nombre. branchID vacío
// agrega todas las sucursales.
func (uc *ReportUseCase) StockSummary(branchID string) (*dto.StockSummaryResponse, error) {
	var (
		list []*entity.StockLevel
		err  error
	)
	if branchID != "" {
		list, err = uc.levels.ListByBranch(branchID, 0, 0)
	} else {
		list, err = uc.levels.ListAll(0, 0)
	}
	if err != nil {
		return nil, err
	}

	summary := &dto.StockSummaryResponse{
		BranchID:  branchID,
		Attention: make([]dto.StockLevelResponse, 0),
	}
	for _, l := range list {
		status := stock.Classify(l.Quantity, l.ThresholdLevel)
		switch status {
		case stock.StatusCritical:
			summary.Critical++
		case stock.StatusLow:
			summary.Low++
		default:
			summary.Adequate++
		}
		if stock.NeedsAlert(status) {
			summary.Attention = append(summary.Attention, toStockLevelResponse(l))
		}
	}
	summary.Total = len(list)

	sort.SliceStable(summary.Attention, func(i, j int) bool {
		si := stock.Severity(stock.Status(summary.Attention[i].Status))
		sj := stock.Severity(stock.Status(summary.Attention[j].Status))
		if si != sj {
			return si > sj
		}
		return summary.Attention[i].ItemName < summary.Attention[j].ItemName
	})
	return summary, nil
}

// Movements devuelve el historial del libro mayor según el filtro.
func (uc *ReportUseCase) Movements(filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	list, err := uc.movements.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ItemID:        m.ItemID,
			BranchID:      m.BranchID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			Reason:        m.Reason,
			Date:          m.Date,
			CreatedBy:     m.CreatedBy,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}
