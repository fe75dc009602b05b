package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/application/pos"
	"github.com/nordico/barber-api/internal/application/reports"
)

// POSHandler maneja el flujo de caja: tickets abiertos, cobro y cola de turnos.
// now entrega la hora en la zona horaria de la cadena para resolver presets.
type POSHandler struct {
	tickets *pos.TicketUseCase
	queue   *pos.QueueUseCase
	now     func() time.Time
}

// NewPOSHandler construye el handler.
func NewPOSHandler(tickets *pos.TicketUseCase, queue *pos.QueueUseCase, now func() time.Time) *POSHandler {
	return &POSHandler{tickets: tickets, queue: queue, now: now}
}

// OpenTicket godoc
// @Summary      Abrir ticket
// @Description  Crea un ticket vacío asignado a un barbero.
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenTicketRequest  true  "Datos del ticket"
// @Success      201   {object}  dto.TicketResponse
// @Router       /api/tickets [post]
func (h *POSHandler) OpenTicket(c *fiber.Ctx) error {
	var in dto.OpenTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LocationID == "" {
		in.LocationID = GetLocationID(c)
	}
	out, err := h.tickets.Open(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetTicket godoc
// @Summary      Obtener ticket por ID
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.TicketResponse
// @Router       /api/tickets/{id} [get]
func (h *POSHandler) GetTicket(c *fiber.Ctx) error {
	out, err := h.tickets.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListTickets godoc
// @Summary      Listar tickets abiertos de la sede
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Success      200  {object}  dto.TicketListResponse
// @Router       /api/tickets [get]
func (h *POSHandler) ListTickets(c *fiber.Ctx) error {
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.tickets.ListByLocation(locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar ítem al ticket
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ticket"
// @Param        body  body  dto.AddItemRequest  true  "Ítem"
// @Success      200   {object}  dto.TicketResponse
// @Router       /api/tickets/{id}/items [post]
func (h *POSHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.tickets.AddItem(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar ítem del ticket
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID del ticket"
// @Param        index  path  int     true  "Posición del ítem"
// @Success      200    {object}  dto.TicketResponse
// @Router       /api/tickets/{id}/items/{index} [delete]
func (h *POSHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	out, err := h.tickets.RemoveItem(c.Params("id"), index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CancelTicket godoc
// @Summary      Cancelar ticket
// @Description  Descarta el ticket sin registrar venta ni afectar inventario.
// @Tags         pos
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      204
// @Router       /api/tickets/{id} [delete]
func (h *POSHandler) CancelTicket(c *fiber.Ctx) error {
	if err := h.tickets.Cancel(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// FinalizeTicket godoc
// @Summary      Cobrar ticket
// @Description  Registra la venta, descuenta inventario y rota la cola de turnos
//
//	en una sola transacción.
//
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ticket"
// @Param        body  body  dto.FinalizeTicketRequest  true  "Método de pago"
// @Success      201   {object}  dto.TransactionResponse
// @Router       /api/tickets/{id}/finalize [post]
func (h *POSHandler) FinalizeTicket(c *fiber.Ctx) error {
	var in dto.FinalizeTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.tickets.Finalize(c.Context(), c.Params("id"), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransactions godoc
// @Summary      Listar ventas de la sede
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Param        preset       query  string  false  "today | month | year"
// @Param        start        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end          query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *POSHandler) ListTransactions(c *fiber.Ctx) error {
	r, err := reports.ResolvePeriod(periodQuery(c), h.now())
	if err != nil {
		return respondError(c, err)
	}
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.tickets.ListTransactions(locationID, r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetTransaction godoc
// @Summary      Obtener venta por ID
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.TransactionResponse
// @Router       /api/transactions/{id} [get]
func (h *POSHandler) GetTransaction(c *fiber.Ctx) error {
	out, err := h.tickets.GetTransaction(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetQueue godoc
// @Summary      Ver cola de turnos de la sede
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Success      200  {object}  dto.QueueResponse
// @Router       /api/queue [get]
func (h *POSHandler) GetQueue(c *fiber.Ctx) error {
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.queue.Get(locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetQueue godoc
// @Summary      Reordenar la cola de turnos
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QueueUpdateRequest  true  "Orden completo de barberos"
// @Success      200   {object}  dto.QueueResponse
// @Router       /api/queue [put]
func (h *POSHandler) SetQueue(c *fiber.Ctx) error {
	var in dto.QueueUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.queue.Set(locationID, in.BarberIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// JoinQueue godoc
// @Summary      Sumar un barbero al final de la cola
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        barber_id  path  string  true  "ID del barbero"
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Success      200  {object}  dto.QueueResponse
// @Router       /api/queue/{barber_id}/join [post]
func (h *POSHandler) JoinQueue(c *fiber.Ctx) error {
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.queue.Join(locationID, c.Params("barber_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LeaveQueue godoc
// @Summary      Retirar un barbero de la cola
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        barber_id  path  string  true  "ID del barbero"
// @Param        location_id  query  string  false  "Sede (por defecto la del token)"
// @Success      200  {object}  dto.QueueResponse
// @Router       /api/queue/{barber_id}/leave [post]
func (h *POSHandler) LeaveQueue(c *fiber.Ctx) error {
	locationID := c.Query("location_id", GetLocationID(c))
	out, err := h.queue.Leave(locationID, c.Params("barber_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
