package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/application/reports"
	"github.com/nordico/barber-api/internal/application/usecase"
)

// ExpenseHandler maneja gastos e ingresos adicionales de la sede. now entrega
// la hora en la zona horaria de la cadena para resolver presets.
type ExpenseHandler struct {
	expenses *usecase.ExpenseUseCase
	incomes  *usecase.OtherIncomeUseCase
	now      func() time.Time
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(expenses *usecase.ExpenseUseCase, incomes *usecase.OtherIncomeUseCase, now func() time.Time) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, incomes: incomes, now: now}
}

// CreateExpense godoc
// @Summary      Registrar gasto
// @Description  Un gasto de categoría "Crédito empleado" exige staff_id válido.
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.ExpenseResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LocationID == "" {
		in.LocationID = GetLocationID(c)
	}
	out, err := h.expenses.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteExpense godoc
// @Summary      Eliminar gasto
// @Tags         expenses
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      204
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	if err := h.expenses.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListExpenses godoc
// @Summary      Listar gastos de la sede
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Param        preset       query  string  false  "today | month | year"
// @Param        start        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end          query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.ExpenseListResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *fiber.Ctx) error {
	r, err := reports.ResolvePeriod(periodQuery(c), h.now())
	if err != nil {
		return respondError(c, err)
	}
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.expenses.ListByLocation(locationID, r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateOtherIncome godoc
// @Summary      Registrar ingreso adicional
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOtherIncomeRequest  true  "Datos del ingreso"
// @Success      201   {object}  dto.OtherIncomeResponse
// @Router       /api/other-incomes [post]
func (h *ExpenseHandler) CreateOtherIncome(c *fiber.Ctx) error {
	var in dto.CreateOtherIncomeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LocationID == "" {
		in.LocationID = GetLocationID(c)
	}
	out, err := h.incomes.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteOtherIncome godoc
// @Summary      Eliminar ingreso adicional
// @Tags         expenses
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      204
// @Router       /api/other-incomes/{id} [delete]
func (h *ExpenseHandler) DeleteOtherIncome(c *fiber.Ctx) error {
	if err := h.incomes.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListOtherIncomes godoc
// @Summary      Listar ingresos adicionales de la sede
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Param        preset       query  string  false  "today | month | year"
// @Param        start        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end          query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.OtherIncomeListResponse
// @Router       /api/other-incomes [get]
func (h *ExpenseHandler) ListOtherIncomes(c *fiber.Ctx) error {
	r, err := reports.ResolvePeriod(periodQuery(c), h.now())
	if err != nil {
		return respondError(c, err)
	}
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.incomes.ListByLocation(locationID, r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
