package pos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
	"github.com/nordico/barber-api/internal/domain/repository"
)

// Métodos de pago aceptados en caja.
var validPaymentMethods = map[string]bool{
	"Efectivo USD":  true,
	"Efectivo BS":   true,
	"Tarjeta":       true,
	"Pago Móvil":    true,
	"Transferencia": true,
}

// TicketUseCase ciclo de vida de un ticket: abrir, agregar y quitar líneas,
// cobrar. Al cobrar, el ticket se convierte en Transaction dentro de una
// transacción de base de datos que además descuenta stock.
type TicketUseCase struct {
	tickets      repository.TicketRepository
	transactions repository.TransactionRepository
	services     repository.ServiceRepository
	products     repository.ProductRepository
	staff        repository.StaffRepository
	customers    repository.CustomerRepository
	queue        *QueueUseCase
	tx           TxRunner
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(
	tickets repository.TicketRepository,
	transactions repository.TransactionRepository,
	services repository.ServiceRepository,
	products repository.ProductRepository,
	staff repository.StaffRepository,
	customers repository.CustomerRepository,
	queue *QueueUseCase,
	tx TxRunner,
) *TicketUseCase {
	return &TicketUseCase{
		tickets:      tickets,
		transactions: transactions,
		services:     services,
		products:     products,
		staff:        staff,
		customers:    customers,
		queue:        queue,
		tx:           tx,
	}
}

// Open abre un ticket para un barbero. CustomerID es opcional (clientes de
// paso); si viene, el nombre registrado del cliente prevalece sobre el enviado.
func (uc *TicketUseCase) Open(in dto.OpenTicketRequest) (*dto.TicketResponse, error) {
	if in.LocationID == "" || in.BarberID == "" {
		return nil, domain.ErrInvalidInput
	}
	barber, err := uc.staff.GetByID(in.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil || !barber.IsBarber() {
		return nil, domain.ErrInvalidInput
	}
	name := in.CustomerName
	if in.CustomerID != "" {
		c, err := uc.customers.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrNotFound
		}
		name = c.Name
	}
	t := &entity.ActiveTicket{
		ID:           uuid.New().String(),
		LocationID:   in.LocationID,
		CustomerID:   in.CustomerID,
		CustomerName: name,
		BarberID:     in.BarberID,
		Items:        []entity.TicketItem{},
		StartTime:    time.Now(),
	}
	if err := uc.tickets.Create(t); err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

// AddItem agrega una línea al ticket. El precio se toma del catálogo salvo que
// la petición traiga un override (cortesías a precio cero, promociones).
func (uc *TicketUseCase) AddItem(ticketID string, in dto.AddItemRequest) (*dto.TicketResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.tickets.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	var item entity.TicketItem
	switch in.ItemType {
	case entity.ItemTypeService:
		s, err := uc.services.GetByID(in.ItemID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, domain.ErrNotFound
		}
		item = entity.TicketItem{
			ItemID:   s.ID,
			Name:     s.Name,
			Price:    s.Price,
			Quantity: in.Quantity,
			Type:     entity.ItemTypeService,
			Category: s.Category,
		}
	case entity.ItemTypeProduct:
		p, err := uc.products.GetByID(in.ItemID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		if p.Stock < in.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		item = entity.TicketItem{
			ItemID:   p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: in.Quantity,
			Type:     entity.ItemTypeProduct,
			Category: p.Category,
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}

	t.Items = append(t.Items, item)
	t.RecalcTotal()
	if err := uc.tickets.Update(t); err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

// RemoveItem quita la línea en la posición indicada.
func (uc *TicketUseCase) RemoveItem(ticketID string, index int) (*dto.TicketResponse, error) {
	t, err := uc.tickets.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if index < 0 || index >= len(t.Items) {
		return nil, domain.ErrInvalidInput
	}
	t.Items = append(t.Items[:index], t.Items[index+1:]...)
	t.RecalcTotal()
	if err := uc.tickets.Update(t); err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

// GetByID obtiene un ticket activo.
func (uc *TicketUseCase) GetByID(id string) (*dto.TicketResponse, error) {
	t, err := uc.tickets.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTicketResponse(t), nil
}

// ListByLocation lista los tickets abiertos de una sede.
func (uc *TicketUseCase) ListByLocation(locationID string) (*dto.TicketListResponse, error) {
	list, err := uc.tickets.ListByLocation(locationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTicketResponse(t))
	}
	return &dto.TicketListResponse{Items: items}, nil
}

// Cancel descarta un ticket sin cobrar. No toca stock porque el stock solo se
// descuenta al cobrar.
func (uc *TicketUseCase) Cancel(id string) error {
	t, err := uc.tickets.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.tickets.Delete(id)
}

// Finalize cobra el ticket: crea la Transaction, descuenta el stock de los
// productos vendidos y elimina el ticket, todo en una sola transacción de base
// de datos. Al terminar rota al barbero al final de la cola de turnos.
func (uc *TicketUseCase) Finalize(ctx context.Context, ticketID string, in dto.FinalizeTicketRequest, recordedBy string) (*dto.TransactionResponse, error) {
	if !validPaymentMethods[in.PaymentMethod] {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.tickets.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if len(t.Items) == 0 {
		return nil, domain.ErrEmptyTicket
	}

	t.RecalcTotal()
	sale := &entity.Transaction{
		ID:              uuid.New().String(),
		LocationID:      t.LocationID,
		CustomerID:      t.CustomerID,
		CustomerName:    t.CustomerName,
		BarberID:        t.BarberID,
		Items:           t.Items,
		TotalAmount:     t.TotalAmount,
		PaymentMethod:   in.PaymentMethod,
		ReferenceNumber: in.ReferenceNumber,
		StartTime:       t.StartTime,
		EndTime:         time.Now(),
		RecordedBy:      recordedBy,
	}

	err = uc.tx.WithinTransaction(ctx, func(r TxRepos) error {
		if err := r.Transactions.Create(sale); err != nil {
			return err
		}
		for _, it := range t.Items {
			// Las cortesías son regalos: no descuentan stock. Los snacks de
			// cortesía sí, porque salen del mismo lote que los snacks vendidos.
			if it.Type != entity.ItemTypeProduct || it.Category == finance.CategoryCourtesy {
				continue
			}
			if err := r.Products.DecrementStock(it.ItemID, it.Quantity); err != nil {
				return err
			}
		}
		return r.Tickets.Delete(t.ID)
	})
	if err != nil {
		return nil, err
	}

	// La rotación de la cola es best-effort: el cobro ya quedó registrado.
	_ = uc.queue.Rotate(t.LocationID, t.BarberID)

	return toTransactionResponse(sale), nil
}

// ListTransactions lista las ventas de una sede en el rango, con su total.
func (uc *TicketUseCase) ListTransactions(locationID string, r finance.DateRange) (*dto.TransactionListResponse, error) {
	list, err := uc.transactions.ListByLocation(locationID, r)
	if err != nil {
		return nil, err
	}
	return toTransactionList(list), nil
}

// GetTransaction obtiene una venta por ID.
func (uc *TicketUseCase) GetTransaction(id string) (*dto.TransactionResponse, error) {
	tx, err := uc.transactions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return toTransactionResponse(tx), nil
}

func toTransactionList(list []*entity.Transaction) *dto.TransactionListResponse {
	items := make([]dto.TransactionResponse, 0, len(list))
	total := decimal.Zero
	for _, tx := range list {
		items = append(items, *toTransactionResponse(tx))
		total = total.Add(tx.TotalAmount)
	}
	return &dto.TransactionListResponse{Items: items, Total: total}
}

func toTicketResponse(t *entity.ActiveTicket) *dto.TicketResponse {
	if t == nil {
		return nil
	}
	return &dto.TicketResponse{
		ID:           t.ID,
		LocationID:   t.LocationID,
		BarberID:     t.BarberID,
		CustomerID:   t.CustomerID,
		CustomerName: t.CustomerName,
		Items:        toItemResponses(t.Items),
		Total:        t.TotalAmount,
		StartTime:    t.StartTime,
	}
}

func toItemResponses(items []entity.TicketItem) []dto.TicketItemResponse {
	out := make([]dto.TicketItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TicketItemResponse{
			ItemType: it.Type,
			ItemID:   it.ItemID,
			Name:     it.Name,
			Category: it.Category,
			Quantity: it.Quantity,
			Price:    it.Price,
			Subtotal: it.Subtotal(),
		})
	}
	return out
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	if tx == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:              tx.ID,
		LocationID:      tx.LocationID,
		BarberID:        tx.BarberID,
		CustomerName:    tx.CustomerName,
		Items:           toItemResponses(tx.Items),
		Total:           tx.TotalAmount,
		PaymentMethod:   tx.PaymentMethod,
		ReferenceNumber: tx.ReferenceNumber,
		StartTime:       tx.StartTime,
		EndTime:         tx.EndTime,
	}
}
