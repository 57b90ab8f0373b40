package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/usecase"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// ReportHandler maneja los reportes de solo lectura.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockSummary godoc
// @Summary      Resumen de existencias por nivel
// @Description  Conteos critical/low/adequate y los renglones que requieren atención,
//               critical primero.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Sucursal (solo admin; vacío = todas)"
// @Success      200        {object}  dto.StockSummaryResponse
// @Failure      403        {object}  dto.ErrorResponse
// @Router       /api/reports/stock-summary [get]
func (h *ReportHandler) StockSummary(c *fiber.Ctx) error {
	branchID, err := effectiveBranchID(c, c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.StockSummary(branchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial de movimientos de stock
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Sucursal (solo admin; el resto usa la del token)"
// @Param        item_id    query  string  false  "Filtrar por artículo"
// @Param        type       query  string  false  "IN u OUT"
// @Param        from       query  string  false  "Desde (RFC3339)"
// @Param        to         query  string  false  "Hasta (RFC3339)"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.MovementListResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	branchID, err := effectiveBranchID(c, c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	limit, offset := pageParams(c)
	filter := repository.MovementFilter{
		BranchID: branchID,
		ItemID:   c.Query("item_id"),
		Type:     c.Query("type"),
		Limit:    limit,
		Offset:   offset,
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
		}
		filter.To = &t
	}
	out, err := h.uc.Movements(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
