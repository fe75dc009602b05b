package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nordico/barber-api/internal/application/reports"
)

// DashboardHandler expone el resumen operativo de la sede.
type DashboardHandler struct {
	dashboard *reports.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard *reports.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetSummary godoc
// @Summary      Dashboard de la sede
// @Description  Totales del período, desglose por método de pago y por rubro.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Param        preset       query  string  false  "today | month | year"
// @Param        start        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end          query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.dashboard.GetSummary(c.Context(), locationID, periodQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
