package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/usecase"
)

// NotificationHandler maneja preferencias de avisos y la consulta de avisos vigentes.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// GetPreferences godoc
// @Summary      Preferencias de avisos del usuario autenticado
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationPreferencesResponse
// @Router       /api/notifications/preferences [get]
func (h *NotificationHandler) GetPreferences(c *fiber.Ctx) error {
	out, err := h.uc.GetPreferences(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdatePreferences godoc
// @Summary      Actualizar preferencias de avisos
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateNotificationPreferencesRequest  true  "Toggles a cambiar"
// @Success      200   {object}  dto.NotificationPreferencesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/notifications/preferences [put]
func (h *NotificationHandler) UpdatePreferences(c *fiber.Ctx) error {
	var in dto.UpdateNotificationPreferencesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePreferences(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Avisos de stock vigentes
// @Description  Recalculados al momento (re-poll) y filtrados por las preferencias del usuario.
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockAlertsResponse
// @Router       /api/notifications/alerts [get]
func (h *NotificationHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(GetUserID(c), GetBranchID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
