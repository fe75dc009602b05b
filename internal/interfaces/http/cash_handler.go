package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/application/reports"
	"github.com/nordico/barber-api/internal/application/usecase"
)

// CashHandler maneja retiros, arqueo y cierre diario de caja. now entrega la
// hora en la zona horaria de la cadena para resolver presets.
type CashHandler struct {
	withdrawals *usecase.WithdrawalUseCase
	cash        *reports.CashRegisterUseCase
	pdf         *reports.ClosePDFUseCase
	now         func() time.Time
}

// NewCashHandler construye el handler.
func NewCashHandler(withdrawals *usecase.WithdrawalUseCase, cash *reports.CashRegisterUseCase, pdf *reports.ClosePDFUseCase, now func() time.Time) *CashHandler {
	return &CashHandler{withdrawals: withdrawals, cash: cash, pdf: pdf, now: now}
}

// CreateWithdrawal godoc
// @Summary      Registrar retiro de caja
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWithdrawalRequest  true  "Datos del retiro"
// @Success      201   {object}  dto.WithdrawalResponse
// @Router       /api/withdrawals [post]
func (h *CashHandler) CreateWithdrawal(c *fiber.Ctx) error {
	var in dto.CreateWithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LocationID == "" {
		in.LocationID = GetLocationID(c)
	}
	out, err := h.withdrawals.Create(in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListWithdrawals godoc
// @Summary      Listar retiros de la sede
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Param        preset       query  string  false  "today | month | year"
// @Param        start        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end          query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.WithdrawalListResponse
// @Router       /api/withdrawals [get]
func (h *CashHandler) ListWithdrawals(c *fiber.Ctx) error {
	r, err := reports.ResolvePeriod(periodQuery(c), h.now())
	if err != nil {
		return respondError(c, err)
	}
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.withdrawals.ListByLocation(locationID, r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetSummary godoc
// @Summary      Arqueo del día en curso
// @Description  Totales del día y efectivo esperado en caja, sin cerrar.
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Success      200  {object}  dto.CashRegisterSummaryResponse
// @Router       /api/cash/summary [get]
func (h *CashHandler) GetSummary(c *fiber.Ctx) error {
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.cash.Summary(c.Context(), locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CloseDay godoc
// @Summary      Cerrar caja del día
// @Description  Congela los totales del día. Un segundo cierre de la misma sede
//
//	y fecha devuelve 409.
//
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CloseDayRequest  true  "Efectivo contado y notas"
// @Success      201   {object}  dto.DailyCloseResponse
// @Router       /api/cash/close [post]
func (h *CashHandler) CloseDay(c *fiber.Ctx) error {
	var in dto.CloseDayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LocationID == "" {
		in.LocationID = GetLocationID(c)
	}
	out, err := h.cash.Close(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetClose godoc
// @Summary      Obtener cierre por ID
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.DailyCloseResponse
// @Router       /api/cash/closes/{id} [get]
func (h *CashHandler) GetClose(c *fiber.Ctx) error {
	out, err := h.cash.GetClose(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListCloses godoc
// @Summary      Historial de cierres de la sede
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Param        preset       query  string  false  "today | month | year"
// @Param        start        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end          query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.DailyCloseListResponse
// @Router       /api/cash/closes [get]
func (h *CashHandler) ListCloses(c *fiber.Ctx) error {
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.cash.History(locationID, periodQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportClosePDF godoc
// @Summary      Descargar cierre en PDF
// @Tags         cash
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del cierre"
// @Success      200  {file}  binary
// @Router       /api/cash/closes/{id}/pdf [get]
func (h *CashHandler) ExportClosePDF(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.pdf.Export(id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="cierre-%s.pdf"`, id))
	return c.Send(data)
}
