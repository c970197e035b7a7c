package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-api/internal/application/dto"
)

type dashboardService interface {
	GetSummary(ctx context.Context) (*dto.DashboardResponse, error)
}

// DashboardHandler maneja el panel principal.
type DashboardHandler struct {
	uc dashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc dashboardService) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve KPIs del mes en curso y las series para gráficos.
// GET /api/dashboard
//
// Respuesta: DashboardResponse (kpis, graficos.pedidos_por_status,
// graficos.faturamento_historico[6], graficos.top_clientes[5]).
// No requiere parámetros; las fechas se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Error: err.Error(),
		})
	}
	return c.JSON(summary)
}
