package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
)

// DashboardHandler expone los agregados del panel.
type DashboardHandler struct {
	repo repository.ReportRepository
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(repo repository.ReportRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

// Summary godoc
// @Summary      Resumen del panel
// @Description  Ingresos, gastos, beneficio neto, contadores y gastos por categoría.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope[entity.DashboardSummary]
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.repo.DashboardSummary(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, summary)
}
