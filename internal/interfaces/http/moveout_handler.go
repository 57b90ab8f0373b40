package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/moveout"
)

// MoveoutHandler maneja el ciclo de vida de las listas de retiro.
type MoveoutHandler struct {
	uc *moveout.MoveoutUseCase
}

// NewMoveoutHandler construye el handler.
func NewMoveoutHandler(uc *moveout.MoveoutUseCase) *MoveoutHandler {
	return &MoveoutHandler{uc: uc}
}

// Create godoc
// @Summary      Generar lista de retiro
// @Description  Crea la lista con todos sus renglones en una sola operación atómica.
// @Tags         moveouts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMoveoutListRequest  true  "title, items (item_id, available_amount, request_amount)"
// @Success      201   {object}  dto.MoveoutListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/moveouts [post]
func (h *MoveoutHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMoveoutListRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	branchID, err := effectiveBranchID(c, in.BranchID)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.CreateList(c.Context(), branchID, GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar listas de retiro
// @Tags         moveouts
// @Security     Bearer
// @Produce      json
// @Param        branch_id  query  string  false  "Sucursal (solo admin; vacío = todas)"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.MoveoutListsResponse
// @Router       /api/moveouts [get]
func (h *MoveoutHandler) List(c *fiber.Ctx) error {
	branchID, err := effectiveBranchID(c, c.Query("branch_id"))
	if err != nil {
		return respondError(c, err)
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), branchID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener lista de retiro con sus renglones
// @Tags         moveouts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {object}  dto.MoveoutListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/moveouts/{id} [get]
func (h *MoveoutHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetList(c.Context(), c.Params("id"), GetBranchID(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lista de retiro no encontrada"})
	}
	return c.JSON(out)
}

// CompleteItem godoc
// @Summary      Completar un renglón de la lista
// @Description  Deduce exactamente request_amount del stock y marca el renglón, en una
//               sola transacción. Cuando cae el último pendiente, la lista pasa a completed.
// @Tags         moveouts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID de la lista"
// @Param        itemId  path  string  true  "ID del renglón"
// @Param        body    body  dto.CompleteMoveoutItemRequest  true  "request_amount, actor_name"
// @Success      200     {object}  dto.CompleteMoveoutItemResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/moveouts/{id}/items/{itemId}/complete [post]
func (h *MoveoutHandler) CompleteItem(c *fiber.Ctx) error {
	var in dto.CompleteMoveoutItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CompleteItem(c.Context(), moveout.CompleteItemInput{
		ListID:          c.Params("id"),
		MoveoutItemID:   c.Params("itemId"),
		RequestAmount:   in.RequestAmount,
		ActorName:       in.ActorName,
		UserID:          GetUserID(c),
		AllowedBranchID: GetBranchID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
