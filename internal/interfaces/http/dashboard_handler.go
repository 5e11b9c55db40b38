package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinivet/clinivet-api/internal/application/analytics"
)

// DashboardHandler trata os endpoints do dashboard (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devolve os KPIs do dia e do mês em curso.
// GET /api/dashboard/summary
//
// Resposta: DashboardSummaryDTO (contadores, financeiro do mês, variação
// percentual em relação ao mês anterior, alertas de estoque).
// Sem parâmetros; as datas são calculadas no servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
