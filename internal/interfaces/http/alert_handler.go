package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/application/inventory"
	"github.com/tu-usuario/textil-crm/internal/domain"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock (protegido).
type AlertHandler struct {
	uc *inventory.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *inventory.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// Create godoc
// @Summary      Crear una alerta de stock manual
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockAlertRequest  true  "Datos de la alerta"
// @Success      201   {object}  dto.StockAlertResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/alerts [post]
func (h *AlertHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockAlertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y tipo de alerta válido son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener alerta por ID
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.StockAlertResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id} [get]
func (h *AlertHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una alerta
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la alerta"
// @Param        body  body  dto.StatusUpdateRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.StockAlertResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/status [patch]
func (h *AlertHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.StatusUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado de alerta no válido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver una alerta activa
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la alerta"
// @Param        body  body  dto.ResolveAlertRequest  false  "Usuario que resuelve"
// @Success      200   {object}  dto.StockAlertResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/resolve [post]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ResolveAlertRequest
	// El cuerpo es opcional: sin él la alerta queda resuelta sin usuario.
	_ = c.BodyParser(&in)
	if in.ResolvedBy == "" {
		in.ResolvedBy = GetUserID(c)
	}
	out, err := h.uc.Resolve(c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CheckProduct evalúa los umbrales de stock de un producto y crea la
// alerta que corresponda. POST /api/alerts/check/:productId
func (h *AlertHandler) CheckProduct(c *fiber.Ctx) error {
	out, err := h.uc.CheckProduct(c.Params("productId"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		// Stock sano o alerta ya activa: nada que crear.
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CheckAll recorre el catálogo completo evaluando umbrales.
// POST /api/alerts/check
func (h *AlertHandler) CheckAll(c *fiber.Ctx) error {
	out, err := h.uc.CheckAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"created": len(out), "alerts": out})
}

// Delete godoc
// @Summary      Eliminar alerta
// @Tags         alerts
// @Security     Bearer
// @Param        id  path  string  true  "ID de la alerta"
// @Success      204
// @Router       /api/alerts/{id} [delete]
func (h *AlertHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar alertas (filtros: active=true, product_id)
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        active      query  bool    false  "Solo alertas activas"
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.StockAlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("active") {
		out, err := h.uc.ListActive()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	if productID := c.Query("product_id"); productID != "" {
		out, err := h.uc.ListByProduct(productID)
		if err != nil {
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
