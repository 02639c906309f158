package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/application/notification"
	"github.com/tu-usuario/textil-crm/internal/domain"
)

// NotificationHandler maneja las notificaciones internas del usuario
// autenticado. Todas las rutas operan sobre el usuario del token.
type NotificationHandler struct {
	uc *notification.UseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *notification.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Notificaciones del usuario autenticado
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        unread  query  bool  false  "Solo no leídas"
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if c.QueryBool("unread") {
		out, err := h.uc.ListUnread(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	out, err := h.uc.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UnreadCount devuelve el número de notificaciones sin leer.
// GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.uc.UnreadCount(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"count": count})
}

// GetByID godoc
// @Summary      Obtener notificación por ID
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la notificación"
// @Success      200  {object}  dto.NotificationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id} [get]
func (h *NotificationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notificación no encontrada"})
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar notificación como leída (idempotente)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la notificación"
// @Success      200  {object}  dto.NotificationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	out, err := h.uc.MarkRead(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notificación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarkAllRead marca como leídas todas las notificaciones del usuario.
// PATCH /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.uc.MarkAllRead(GetUserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar notificación
// @Tags         notifications
// @Security     Bearer
// @Param        id  path  string  true  "ID de la notificación"
// @Success      204
// @Router       /api/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
