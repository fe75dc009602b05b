package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nordico/barber-api/internal/application/reports"
)

// ReportsHandler maneja los reportes financieros: reparto de utilidades,
// comisiones, ingresos por rubro y rendimiento por ítem.
type ReportsHandler struct {
	distribution *reports.DistributionUseCase
	commission   *reports.CommissionUseCase
	income       *reports.IncomeUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(distribution *reports.DistributionUseCase, commission *reports.CommissionUseCase, income *reports.IncomeUseCase) *ReportsHandler {
	return &ReportsHandler{distribution: distribution, commission: commission, income: income}
}

// GetDistribution godoc
// @Summary      Reparto de utilidades de una sede
// @Description  Árbol completo del reparto según el tipo de sede (propia,
//
//	franquicia o planta). Solo administradores.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        location_id  path   string  true   "Sede"
// @Param        preset       query  string  false  "today | month | year"
// @Param        start        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end          query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.DistributionResponse
// @Router       /api/reports/distribution/{location_id} [get]
func (h *ReportsHandler) GetDistribution(c *fiber.Ctx) error {
	out, err := h.distribution.ForLocation(c.Context(), c.Params("location_id"), periodQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetDistributionAll godoc
// @Summary      Reparto consolidado de todas las sedes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        preset  query  string  false  "today | month | year"
// @Param        start   query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end     query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.DistributionReportResponse
// @Router       /api/reports/distribution [get]
func (h *ReportsHandler) GetDistributionAll(c *fiber.Ctx) error {
	out, err := h.distribution.ForAllLocations(c.Context(), periodQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCommission godoc
// @Summary      Comisión semanal de un barbero
// @Description  Semana de lunes a domingo que contiene la fecha de referencia
//
//	(por defecto la actual).
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        barber_id  path   string  true   "Barbero"
// @Param        ref        query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200  {object}  dto.CommissionReportResponse
// @Router       /api/reports/commissions/barber/{barber_id} [get]
func (h *ReportsHandler) GetCommission(c *fiber.Ctx) error {
	out, err := h.commission.ForBarber(c.Context(), c.Params("barber_id"), c.Query("ref"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCommissionBoard godoc
// @Summary      Tablero semanal de comisiones de la sede
// @Description  Incluye a todos los barberos activos, con o sin ventas.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Param        ref          query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200  {object}  dto.CommissionBoardResponse
// @Router       /api/reports/commissions [get]
func (h *ReportsHandler) GetCommissionBoard(c *fiber.Ctx) error {
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.commission.ForLocation(c.Context(), locationID, c.Query("ref"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetIncomeByCategory godoc
// @Summary      Ingresos por rubro
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Param        preset       query  string  false  "today | month | year"
// @Param        start        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end          query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.CategoryIncomeReportResponse
// @Router       /api/reports/income-by-category [get]
func (h *ReportsHandler) GetIncomeByCategory(c *fiber.Ctx) error {
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.income.ByCategory(c.Context(), locationID, periodQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetItemEarnings godoc
// @Summary      Rendimiento por ítem
// @Description  Ingresos, unidades y margen estimado por servicio o producto.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Param        preset       query  string  false  "today | month | year"
// @Param        start        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end          query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.ItemEarningsReportResponse
// @Router       /api/reports/item-earnings [get]
func (h *ReportsHandler) GetItemEarnings(c *fiber.Ctx) error {
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.income.ItemEarnings(c.Context(), locationID, periodQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBarberReport godoc
// @Summary      Rendimiento de un barbero
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        barber_id    path   string  true   "Barbero"
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Param        preset       query  string  false  "today | month | year"
// @Param        start        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end          query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.BarberReportResponse
// @Router       /api/reports/barbers/{barber_id} [get]
func (h *ReportsHandler) GetBarberReport(c *fiber.Ctx) error {
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.income.BarberReport(locationID, c.Params("barber_id"), periodQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
