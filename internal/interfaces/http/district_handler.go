package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/usecase"
)

// DistrictHandler maneja las peticiones HTTP para distritos (solo admin).
type DistrictHandler struct {
	uc *usecase.DistrictUseCase
}

// NewDistrictHandler construye el handler.
func NewDistrictHandler(uc *usecase.DistrictUseCase) *DistrictHandler {
	return &DistrictHandler{uc: uc}
}

// Create godoc
// @Summary      Crear distrito
// @Tags         districts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDistrictRequest  true  "region_id, name"
// @Success      201   {object}  dto.DistrictResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/districts [post]
func (h *DistrictHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDistrictRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.RegionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "region_id y name son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener distrito por ID
// @Tags         districts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del distrito"
// @Success      200  {object}  dto.DistrictResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/districts/{id} [get]
func (h *DistrictHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "distrito no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar distrito
// @Tags         districts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del distrito"
// @Param        body  body  dto.UpdateDistrictRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DistrictResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/districts/{id} [put]
func (h *DistrictHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDistrictRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "distrito no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar distritos
// @Tags         districts
// @Security     Bearer
// @Produce      json
// @Param        region_id  query  string  false  "Filtrar por región"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.DistrictListResponse
// @Router       /api/districts [get]
func (h *DistrictHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("region_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar distrito
// @Tags         districts
// @Security     Bearer
// @Param        id  path  string  true  "ID del distrito"
// @Success      204
// @Router       /api/districts/{id} [delete]
func (h *DistrictHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
