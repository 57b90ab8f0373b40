package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/inventory"
	"github.com/jhoicas/Sucursales-api/internal/application/usecase"
)

// StockHandler maneja consultas de existencias, el ajuste por delta y el backfill.
type StockHandler struct {
	query      *usecase.StockQueryUseCase
	delta      *inventory.ApplyStockDeltaUseCase
	initialize *inventory.InitializeStockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(
	query *usecase.StockQueryUseCase,
	delta *inventory.ApplyStockDeltaUseCase,
	initialize *inventory.InitializeStockUseCase,
) *StockHandler {
	return &StockHandler{query: query, delta: delta, initialize: initialize}
}

// List godoc
// @Summary      Listar existencias clasificadas
// @Description  Cada renglón trae su nivel: critical (<= 50% del umbral), low (<= umbral) o adequate.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Sucursal (solo admin; el resto usa la del token)"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.StockListResponse
// @Failure      403        {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	branchID, err := effectiveBranchID(c, c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	limit, offset := pageParams(c)
	var out *dto.StockListResponse
	if branchID == "" {
		out, err = h.query.ListAll(limit, offset)
	} else {
		out, err = h.query.ListByBranch(branchID, limit, offset)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Existencia de un artículo en una sucursal
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        itemId     path   string  true   "ID del artículo"
// @Param        branch_id  query  string  false  "Sucursal (solo admin; el resto usa la del token)"
// @Success      200  {object}  dto.StockLevelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{itemId} [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	branchID, err := effectiveBranchID(c, c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	if branchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branch_id es requerido"})
	}
	out, err := h.query.Get(c.Params("itemId"), branchID)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sin existencia registrada para ese artículo"})
	}
	return c.JSON(out)
}

// ApplyDelta godoc
// @Summary      Ajustar existencia (entrada o salida)
// @Description  Único punto de mutación del stock. Un OUT mayor a la existencia falla atómico con 409.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStockRequest  true  "item_id, direction (in|out), amount"
// @Success      200   {object}  dto.StockDeltaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/delta [post]
func (h *StockHandler) ApplyDelta(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	branchID, err := effectiveBranchID(c, in.BranchID)
	if err != nil {
		return respondError(c, err)
	}
	result, err := h.delta.Apply(c.Context(), inventory.DeltaInput{
		ItemID:    in.ItemID,
		BranchID:  branchID,
		Direction: in.Direction,
		Amount:    in.Amount,
		Reason:    in.Reason,
		UserID:    GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockDeltaResponse{
		ItemID:      in.ItemID,
		BranchID:    branchID,
		NewQuantity: result.NewQuantity,
		Status:      string(result.Status),
	})
}

// Initialize godoc
// @Summary      Backfill de existencias en cero
// @Description  Crea filas en cero para los artículos del catálogo sin existencia en la sucursal. Idempotente.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Sucursal (solo admin; el resto usa la del token)"
// @Success      200  {object}  dto.InitializeStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/initialize [post]
func (h *StockHandler) Initialize(c *fiber.Ctx) error {
	branchID, err := effectiveBranchID(c, c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	if branchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branch_id es requerido"})
	}
	n, err := h.initialize.Initialize(c.Context(), branchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.InitializeStockResponse{Initialized: n})
}
