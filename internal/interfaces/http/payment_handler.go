package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/textil-crm/internal/application/billing"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/application/notification"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/pkg/logger"
)

// PaymentHandler maneja las peticiones HTTP de pagos (protegido).
type PaymentHandler struct {
	uc      *billing.PaymentUseCase
	emailUC *notification.EmailUseCase
	log     *logger.Logger
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase, emailUC *notification.EmailUseCase, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, emailUC: emailUC, log: log.Component("payments")}
}

// Create godoc
// @Summary      Registrar un pago (referencia autogenerada si no se envía)
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Datos del pago"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice_id, monto positivo y método de pago válido son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un pago con esa referencia"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pago por ID
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar notas y método de un pago pendiente
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pago"
// @Param        body  body  dto.UpdatePaymentRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [put]
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "solo se pueden modificar pagos pendientes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Process godoc
// @Summary      Procesar un pago pendiente contra la pasarela
// @Description  Transiciona Pending → Processing → Completed/Failed y
// @Description  reconcilia el estado de la factura asociada.
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/process [post]
func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	out, err := h.uc.Process(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "solo se pueden procesar pagos pendientes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	if out.Status == entity.PaymentStatusCompleted {
		if err := h.emailUC.SendPaymentConfirmation(out.ID); err != nil {
			// El correo nunca revierte un pago ya procesado.
			h.log.Warn().Err(err).Str("payment_id", out.ID).Msg("no se pudo enviar la confirmación de pago")
		}
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pago (reconcilia la factura asociada)
// @Tags         payments
// @Security     Bearer
// @Param        id  path  string  true  "ID del pago"
// @Success      204
// @Router       /api/payments/{id} [delete]
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pago no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar pagos (filtros: invoice_id, method, status)
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        invoice_id  query  string  false  "Filtrar por factura"
// @Param        method      query  string  false  "Filtrar por método"
// @Param        status      query  string  false  "Filtrar por estado"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.PaymentListResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	if invoiceID := c.Query("invoice_id"); invoiceID != "" {
		out, err := h.uc.ListByInvoice(invoiceID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	if method := c.Query("method"); method != "" {
		out, err := h.uc.ListByMethod(method)
		if err != nil {
			if err == domain.ErrInvalidInput {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "método de pago no válido"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	if status := c.Query("status"); status != "" {
		out, err := h.uc.ListByStatus(status)
		if err != nil {
			if err == domain.ErrInvalidInput {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado de pago no válido"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}

	out, err := h.uc.List(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
