package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/application/reports"
)

// DashboardHandler expone el resumen de métricas del negocio.
type DashboardHandler struct {
	uc *reports.DashboardUseCase
}

func NewDashboardHandler(uc *reports.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve facturación, pedidos, clientes top y pendientes de cobro.
// GET /api/dashboard/summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
