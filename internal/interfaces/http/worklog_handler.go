package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/application/hr"
	"github.com/tu-usuario/textil-crm/internal/domain"
)

// WorkLogHandler registra entradas y salidas de jornada (protegido).
type WorkLogHandler struct {
	uc *hr.WorkLogUseCase
}

// NewWorkLogHandler construye el handler.
func NewWorkLogHandler(uc *hr.WorkLogUseCase) *WorkLogHandler {
	return &WorkLogHandler{uc: uc}
}

// CheckIn godoc
// @Summary      Abrir jornada de un empleado
// @Tags         worklogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckInRequest  true  "Empleado y notas"
// @Success      201   {object}  dto.WorkLogResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/worklogs/check-in [post]
func (h *WorkLogHandler) CheckIn(c *fiber.Ctx) error {
	var in dto.CheckInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CheckIn(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employee_id es requerido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el empleado ya tiene una jornada abierta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CheckOut godoc
// @Summary      Cerrar jornada (calcula horas trabajadas)
// @Tags         worklogs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.WorkLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/worklogs/{id}/check-out [post]
func (h *WorkLogHandler) CheckOut(c *fiber.Ctx) error {
	out, err := h.uc.CheckOut(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro de jornada no encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la jornada ya fue cerrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de jornada por ID
// @Tags         worklogs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.WorkLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/worklogs/{id} [get]
func (h *WorkLogHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro de jornada no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de jornada
// @Tags         worklogs
// @Security     Bearer
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Router       /api/worklogs/{id} [delete]
func (h *WorkLogHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
