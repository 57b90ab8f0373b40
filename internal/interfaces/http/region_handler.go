package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/usecase"
)

// RegionHandler maneja las peticiones HTTP para regiones (solo admin).
type RegionHandler struct {
	uc *usecase.RegionUseCase
}

// NewRegionHandler construye el handler.
func NewRegionHandler(uc *usecase.RegionUseCase) *RegionHandler {
	return &RegionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear región
// @Tags         regions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRegionRequest  true  "Datos de la región"
// @Success      201   {object}  dto.RegionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/regions [post]
func (h *RegionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRegionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener región por ID
// @Tags         regions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la región"
// @Success      200  {object}  dto.RegionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/regions/{id} [get]
func (h *RegionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "región no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar región
// @Tags         regions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la región"
// @Param        body  body  dto.UpdateRegionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.RegionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/regions/{id} [put]
func (h *RegionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRegionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "región no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar regiones
// @Tags         regions
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.RegionListResponse
// @Router       /api/regions [get]
func (h *RegionHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar región
// @Tags         regions
// @Security     Bearer
// @Param        id  path  string  true  "ID de la región"
// @Success      204
// @Router       /api/regions/{id} [delete]
func (h *RegionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
