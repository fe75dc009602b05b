package pos_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/application/pos"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
	"github.com/nordico/barber-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type memTickets struct {
	byID map[string]*entity.ActiveTicket
}

var _ repository.TicketRepository = (*memTickets)(nil)

func newMemTickets() *memTickets {
	return &memTickets{byID: make(map[string]*entity.ActiveTicket)}
}

func (m *memTickets) Create(t *entity.ActiveTicket) error { m.byID[t.ID] = t; return nil }
func (m *memTickets) GetByID(id string) (*entity.ActiveTicket, error) {
	return m.byID[id], nil
}
func (m *memTickets) Update(t *entity.ActiveTicket) error { m.byID[t.ID] = t; return nil }
func (m *memTickets) Delete(id string) error              { delete(m.byID, id); return nil }
func (m *memTickets) ListByLocation(locationID string) ([]*entity.ActiveTicket, error) {
	var out []*entity.ActiveTicket
	for _, t := range m.byID {
		if t.LocationID == locationID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (m *memTickets) CountByLocation(locationID string) (int, error) {
	list, _ := m.ListByLocation(locationID)
	return len(list), nil
}

type memTransactions struct {
	byID map[string]*entity.Transaction
}

var _ repository.TransactionRepository = (*memTransactions)(nil)

func newMemTransactions() *memTransactions {
	return &memTransactions{byID: make(map[string]*entity.Transaction)}
}

func (m *memTransactions) Create(tx *entity.Transaction) error { m.byID[tx.ID] = tx; return nil }
func (m *memTransactions) GetByID(id string) (*entity.Transaction, error) {
	return m.byID[id], nil
}
func (m *memTransactions) ListByLocation(locationID string, r finance.DateRange) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range m.byID {
		if tx.LocationID == locationID && r.Contains(tx.EndTime) {
			out = append(out, tx)
		}
	}
	return out, nil
}
func (m *memTransactions) ListByBarber(locationID, barberID string, r finance.DateRange) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range m.byID {
		if tx.LocationID == locationID && tx.BarberID == barberID && r.Contains(tx.EndTime) {
			out = append(out, tx)
		}
	}
	return out, nil
}

type memServices struct {
	byID map[string]*entity.Service
}

var _ repository.ServiceRepository = (*memServices)(nil)

func (m *memServices) Create(s *entity.Service) error { m.byID[s.ID] = s; return nil }
func (m *memServices) GetByID(id string) (*entity.Service, error) {
	return m.byID[id], nil
}
func (m *memServices) Update(s *entity.Service) error { m.byID[s.ID] = s; return nil }
func (m *memServices) Delete(id string) error         { delete(m.byID, id); return nil }
func (m *memServices) List() ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range m.byID {
		out = append(out, s)
	}
	return out, nil
}

type memProducts struct {
	byID map[string]*entity.Product
}

var _ repository.ProductRepository = (*memProducts)(nil)

func (m *memProducts) Create(p *entity.Product) error { m.byID[p.ID] = p; return nil }
func (m *memProducts) GetByID(id string) (*entity.Product, error) {
	return m.byID[id], nil
}
func (m *memProducts) Update(p *entity.Product) error { m.byID[p.ID] = p; return nil }
func (m *memProducts) Delete(id string) error         { delete(m.byID, id); return nil }
func (m *memProducts) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}
func (m *memProducts) DecrementStock(id string, quantity int) error {
	p, ok := m.byID[id]
	if !ok || p.Stock < quantity {
		return domain.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

type memStaff struct {
	byID map[string]*entity.Staff
}

var _ repository.StaffRepository = (*memStaff)(nil)

func (m *memStaff) Create(s *entity.Staff) error { m.byID[s.ID] = s; return nil }
func (m *memStaff) GetByID(id string) (*entity.Staff, error) {
	return m.byID[id], nil
}
func (m *memStaff) Update(s *entity.Staff) error { m.byID[s.ID] = s; return nil }
func (m *memStaff) Delete(id string) error       { delete(m.byID, id); return nil }
func (m *memStaff) ListByLocation(locationID string) ([]*entity.Staff, error) {
	var out []*entity.Staff
	for _, s := range m.byID {
		if s.LocationID == locationID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (m *memStaff) ListBarbersByLocation(locationID string) ([]*entity.Staff, error) {
	var out []*entity.Staff
	for _, s := range m.byID {
		if s.LocationID == locationID && s.IsBarber() {
			out = append(out, s)
		}
	}
	return out, nil
}

type memCustomers struct {
	byID map[string]*entity.Customer
}

var _ repository.CustomerRepository = (*memCustomers)(nil)

func (m *memCustomers) Create(c *entity.Customer) error { m.byID[c.ID] = c; return nil }
func (m *memCustomers) GetByID(id string) (*entity.Customer, error) {
	return m.byID[id], nil
}
func (m *memCustomers) Update(c *entity.Customer) error { m.byID[c.ID] = c; return nil }
func (m *memCustomers) Delete(id string) error          { delete(m.byID, id); return nil }
func (m *memCustomers) List(limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}

type memQueue struct {
	byLocation map[string][]string
}

var _ repository.QueueRepository = (*memQueue)(nil)

func (m *memQueue) Get(locationID string) ([]string, error) {
	return m.byLocation[locationID], nil
}
func (m *memQueue) Save(locationID string, barberIDs []string) error {
	m.byLocation[locationID] = barberIDs
	return nil
}

// fakeTx ejecuta fn directamente sobre los repositorios en memoria; no hay
// rollback porque los tests verifican solo el camino feliz de la atomicidad.
type fakeTx struct {
	repos pos.TxRepos
}

func (f *fakeTx) WithinTransaction(_ context.Context, fn func(r pos.TxRepos) error) error {
	return fn(f.repos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type posFixture struct {
	tickets      *memTickets
	transactions *memTransactions
	products     *memProducts
	queue        *memQueue
	queueUC      *pos.QueueUseCase
	uc           *pos.TicketUseCase
}

func newPOSFixture() *posFixture {
	tickets := newMemTickets()
	transactions := newMemTransactions()
	services := &memServices{byID: map[string]*entity.Service{
		"corte": {ID: "corte", Name: "Corte Clásico", Price: dec("10"), Category: finance.CategoryBarberia},
	}}
	products := &memProducts{byID: map[string]*entity.Product{
		"cera":    {ID: "cera", Name: "Cera Moldeadora", Price: dec("8"), Stock: 3, Category: "Producto"},
		"regalo":  {ID: "regalo", Name: "Peine de Cortesía", Price: dec("0"), Stock: 5, Category: finance.CategoryCourtesy},
		"galleta": {ID: "galleta", Name: "Galleta", Price: dec("0"), Stock: 4, Category: finance.CategorySnackCourtesy},
	}}
	staff := &memStaff{byID: map[string]*entity.Staff{
		"b1": {ID: "b1", LocationID: "magallanes", Name: "Luis", Role: entity.RoleBarber},
		"b2": {ID: "b2", LocationID: "magallanes", Name: "Pedro", Role: entity.RoleBarber},
	}}
	customers := &memCustomers{byID: map[string]*entity.Customer{
		"c1": {ID: "c1", Name: "José Gómez"},
	}}
	queue := &memQueue{byLocation: map[string][]string{
		"magallanes": {"b1", "b2"},
	}}
	queueUC := pos.NewQueueUseCase(queue, staff)
	tx := &fakeTx{repos: pos.TxRepos{
		Transactions: transactions,
		Products:     products,
		Tickets:      tickets,
	}}
	uc := pos.NewTicketUseCase(tickets, transactions, services, products, staff, customers, queueUC, tx)
	return &posFixture{
		tickets:      tickets,
		transactions: transactions,
		products:     products,
		queue:        queue,
		queueUC:      queueUC,
		uc:           uc,
	}
}

func (f *posFixture) openTicket(t *testing.T) string {
	t.Helper()
	resp, err := f.uc.Open(dto.OpenTicketRequest{
		LocationID: "magallanes",
		BarberID:   "b1",
		CustomerID: "c1",
	})
	require.NoError(t, err)
	return resp.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestTicket_OpenUsaNombreRegistradoDelCliente(t *testing.T) {
	f := newPOSFixture()

	resp, err := f.uc.Open(dto.OpenTicketRequest{
		LocationID:   "magallanes",
		BarberID:     "b1",
		CustomerID:   "c1",
		CustomerName: "otro nombre",
	})
	require.NoError(t, err)
	assert.Equal(t, "José Gómez", resp.CustomerName,
		"con cliente registrado, su nombre prevalece sobre el enviado")
}

func TestTicket_OpenBarberoInvalido(t *testing.T) {
	f := newPOSFixture()

	_, err := f.uc.Open(dto.OpenTicketRequest{LocationID: "magallanes", BarberID: "nadie"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTicket_AddItemRecalculaTotal(t *testing.T) {
	f := newPOSFixture()
	id := f.openTicket(t)

	_, err := f.uc.AddItem(id, dto.AddItemRequest{ItemID: "corte", ItemType: entity.ItemTypeService, Quantity: 2})
	require.NoError(t, err)
	resp, err := f.uc.AddItem(id, dto.AddItemRequest{ItemID: "cera", ItemType: entity.ItemTypeProduct, Quantity: 1})
	require.NoError(t, err)

	assert.True(t, dec("28").Equal(resp.Total), "total debe ser 2×$10 + $8 = $28, fue %s", resp.Total)
}

func TestTicket_AddItemPrecioOverride(t *testing.T) {
	f := newPOSFixture()
	id := f.openTicket(t)

	cero := decimal.Zero
	resp, err := f.uc.AddItem(id, dto.AddItemRequest{
		ItemID:   "corte",
		ItemType: entity.ItemTypeService,
		Quantity: 1,
		Price:    &cero,
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.IsZero(), "una cortesía a precio cero no suma al total")
}

func TestTicket_AddItemSinStock(t *testing.T) {
	f := newPOSFixture()
	id := f.openTicket(t)

	_, err := f.uc.AddItem(id, dto.AddItemRequest{ItemID: "cera", ItemType: entity.ItemTypeProduct, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "pedir 5 con stock 3 debe fallar")
}

func TestTicket_RemoveItemIndiceInvalido(t *testing.T) {
	f := newPOSFixture()
	id := f.openTicket(t)

	_, err := f.uc.RemoveItem(id, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no hay líneas que quitar")
}

func TestTicket_FinalizeVacioFalla(t *testing.T) {
	f := newPOSFixture()
	id := f.openTicket(t)

	_, err := f.uc.Finalize(context.Background(), id, dto.FinalizeTicketRequest{PaymentMethod: "Efectivo USD"}, "user-1")
	assert.ErrorIs(t, err, domain.ErrEmptyTicket)
}

func TestTicket_FinalizeMetodoDePagoInvalido(t *testing.T) {
	f := newPOSFixture()
	id := f.openTicket(t)

	_, err := f.uc.Finalize(context.Background(), id, dto.FinalizeTicketRequest{PaymentMethod: "Cheque"}, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cobrar descuenta stock, elimina el ticket, registra la venta y rota al
// barbero al final de la cola.
func TestTicket_FinalizeCompleto(t *testing.T) {
	f := newPOSFixture()
	id := f.openTicket(t)

	_, err := f.uc.AddItem(id, dto.AddItemRequest{ItemID: "corte", ItemType: entity.ItemTypeService, Quantity: 1})
	require.NoError(t, err)
	_, err = f.uc.AddItem(id, dto.AddItemRequest{ItemID: "cera", ItemType: entity.ItemTypeProduct, Quantity: 2})
	require.NoError(t, err)

	sale, err := f.uc.Finalize(context.Background(), id, dto.FinalizeTicketRequest{PaymentMethod: "Tarjeta"}, "user-1")
	require.NoError(t, err)

	assert.True(t, dec("26").Equal(sale.Total), "venta debe totalizar $10 + 2×$8 = $26, fue %s", sale.Total)
	assert.Equal(t, "Tarjeta", sale.PaymentMethod)

	assert.Equal(t, 1, f.products.byID["cera"].Stock, "el stock debe bajar de 3 a 1")
	assert.NotContains(t, f.tickets.byID, id, "el ticket cobrado desaparece")
	assert.Len(t, f.transactions.byID, 1)
	assert.Equal(t, []string{"b2", "b1"}, f.queue.byLocation["magallanes"],
		"el barbero que cobró pasa al final de la cola")
}

// Los regalos de categoría Cortesía no descuentan stock al cobrar; los snacks
// de cortesía sí, porque salen del mismo lote que los vendidos.
func TestTicket_FinalizeCortesiaNoDescuentaStock(t *testing.T) {
	f := newPOSFixture()
	id := f.openTicket(t)

	_, err := f.uc.AddItem(id, dto.AddItemRequest{ItemID: "corte", ItemType: entity.ItemTypeService, Quantity: 1})
	require.NoError(t, err)
	_, err = f.uc.AddItem(id, dto.AddItemRequest{ItemID: "regalo", ItemType: entity.ItemTypeProduct, Quantity: 2})
	require.NoError(t, err)
	_, err = f.uc.AddItem(id, dto.AddItemRequest{ItemID: "galleta", ItemType: entity.ItemTypeProduct, Quantity: 1})
	require.NoError(t, err)

	_, err = f.uc.Finalize(context.Background(), id, dto.FinalizeTicketRequest{PaymentMethod: "Efectivo USD"}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 5, f.products.byID["regalo"].Stock, "una cortesía no debe descontar stock")
	assert.Equal(t, 3, f.products.byID["galleta"].Stock, "el snack de cortesía sí descuenta stock")
}

func TestTicket_CancelNoTocaStock(t *testing.T) {
	f := newPOSFixture()
	id := f.openTicket(t)

	_, err := f.uc.AddItem(id, dto.AddItemRequest{ItemID: "cera", ItemType: entity.ItemTypeProduct, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, f.uc.Cancel(id))
	assert.Equal(t, 3, f.products.byID["cera"].Stock, "cancelar no descuenta inventario")
	assert.Empty(t, f.transactions.byID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cola de turnos
// ──────────────────────────────────────────────────────────────────────────────

func TestQueue_SetRechazaRepetidos(t *testing.T) {
	f := newPOSFixture()

	_, err := f.queueUC.Set("magallanes", []string{"b1", "b1"})
	assert.ErrorIs(t, err, domain.ErrBarberAlreadyQueued)
}

func TestQueue_SetRechazaDesconocidos(t *testing.T) {
	f := newPOSFixture()

	_, err := f.queueUC.Set("magallanes", []string{"b1", "intruso"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQueue_JoinYLeave(t *testing.T) {
	f := newPOSFixture()
	f.queue.byLocation["magallanes"] = []string{"b1"}

	resp, err := f.queueUC.Join("magallanes", "b2")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, resp.BarberIDs)

	_, err = f.queueUC.Join("magallanes", "b2")
	assert.ErrorIs(t, err, domain.ErrBarberAlreadyQueued)

	resp, err = f.queueUC.Leave("magallanes", "b1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b2"}, resp.BarberIDs)
}

func TestQueue_RotateIgnoraAusentes(t *testing.T) {
	f := newPOSFixture()
	f.queue.byLocation["magallanes"] = []string{"b1", "b2"}

	require.NoError(t, f.queueUC.Rotate("magallanes", "fantasma"))
	assert.Equal(t, []string{"b1", "b2"}, f.queue.byLocation["magallanes"], "rotar a alguien fuera de la cola no cambia nada")
}
