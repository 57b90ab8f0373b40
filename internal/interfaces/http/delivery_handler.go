package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/usecase"
)

// DeliveryHandler maneja el registro y la consulta de entregas recibidas.
type DeliveryHandler struct {
	uc *usecase.DeliveryUseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *usecase.DeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar entrega recibida
// @Description  Persiste la entrega y suma la cantidad al stock en la misma transacción.
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordDeliveryRequest  true  "item_id, supplier, amount, received_by"
// @Success      201   {object}  dto.DeliveryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/deliveries [post]
func (h *DeliveryHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	branchID, err := effectiveBranchID(c, in.BranchID)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Record(c.Context(), branchID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar entregas de una sucursal
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Sucursal (solo admin; el resto usa la del token)"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.DeliveryListResponse
// @Failure      403        {object}  dto.ErrorResponse
// @Router       /api/deliveries [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	branchID, err := effectiveBranchID(c, c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	if branchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branch_id es requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListByBranch(branchID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
