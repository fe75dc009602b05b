package reports_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
	"github.com/nordico/barber-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de reportes
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fakeAnalytics devuelve totales fijos para cualquier rango consultado.
type fakeAnalytics struct {
	sales       decimal.Decimal
	otherIncome decimal.Decimal
	expenses    decimal.Decimal
	txCount     int
	methods     []repository.PaymentMethodIncome
	weekItems   []repository.BarberWeekResult
}

var _ repository.AnalyticsRepository = (*fakeAnalytics)(nil)

func (f *fakeAnalytics) GetPeriodTotals(_ context.Context, _ string, _, _ time.Time) (decimal.Decimal, decimal.Decimal, decimal.Decimal, int, error) {
	return f.sales, f.otherIncome, f.expenses, f.txCount, nil
}

func (f *fakeAnalytics) GetIncomeByPaymentMethod(_ context.Context, _ string, _, _ time.Time) ([]repository.PaymentMethodIncome, error) {
	return f.methods, nil
}

func (f *fakeAnalytics) GetSoldItems(_ context.Context, _ string, _, _ time.Time) ([]entity.TicketItem, error) {
	return nil, nil
}

func (f *fakeAnalytics) GetItemEarnings(_ context.Context, _ string, _, _ time.Time) ([]repository.ItemEarningsResult, error) {
	return nil, nil
}

func (f *fakeAnalytics) GetBarberWeekItems(_ context.Context, _ string, _, _ time.Time) ([]repository.BarberWeekResult, error) {
	return f.weekItems, nil
}

// fakeLocations sedes precargadas.
type fakeLocations struct {
	locs []*entity.Location
}

var _ repository.LocationRepository = (*fakeLocations)(nil)

func (f *fakeLocations) GetByID(id string) (*entity.Location, error) {
	for _, l := range f.locs {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLocations) GetByName(name string) (*entity.Location, error) {
	for _, l := range f.locs {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLocations) List() ([]*entity.Location, error) {
	return f.locs, nil
}

// fakeStaff personal precargado; las escrituras son no-op.
type fakeStaff struct {
	staff []*entity.Staff
}

var _ repository.StaffRepository = (*fakeStaff)(nil)

func (f *fakeStaff) Create(*entity.Staff) error { return nil }
func (f *fakeStaff) Update(*entity.Staff) error { return nil }
func (f *fakeStaff) Delete(string) error        { return nil }

func (f *fakeStaff) GetByID(id string) (*entity.Staff, error) {
	for _, s := range f.staff {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStaff) ListByLocation(locationID string) ([]*entity.Staff, error) {
	var out []*entity.Staff
	for _, s := range f.staff {
		if s.LocationID == locationID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStaff) ListBarbersByLocation(locationID string) ([]*entity.Staff, error) {
	var out []*entity.Staff
	for _, s := range f.staff {
		if s.LocationID == locationID && s.IsBarber() {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeTransactions ventas precargadas; Create acumula.
type fakeTransactions struct {
	items []*entity.Transaction
}

var _ repository.TransactionRepository = (*fakeTransactions)(nil)

func (f *fakeTransactions) Create(tx *entity.Transaction) error {
	f.items = append(f.items, tx)
	return nil
}

func (f *fakeTransactions) GetByID(id string) (*entity.Transaction, error) {
	for _, tx := range f.items {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactions) ListByLocation(locationID string, r finance.DateRange) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range f.items {
		if tx.LocationID == locationID && r.Contains(tx.EndTime) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeTransactions) ListByBarber(locationID, barberID string, r finance.DateRange) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range f.items {
		if tx.LocationID == locationID && tx.BarberID == barberID && r.Contains(tx.EndTime) {
			out = append(out, tx)
		}
	}
	return out, nil
}

// fakeTickets tickets activos precargados; las escrituras son no-op.
type fakeTickets struct {
	tickets []*entity.ActiveTicket
}

var _ repository.TicketRepository = (*fakeTickets)(nil)

func (f *fakeTickets) Create(*entity.ActiveTicket) error { return nil }
func (f *fakeTickets) Update(*entity.ActiveTicket) error { return nil }
func (f *fakeTickets) Delete(string) error               { return nil }

func (f *fakeTickets) GetByID(id string) (*entity.ActiveTicket, error) {
	for _, t := range f.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTickets) ListByLocation(locationID string) ([]*entity.ActiveTicket, error) {
	var out []*entity.ActiveTicket
	for _, t := range f.tickets {
		if t.LocationID == locationID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTickets) CountByLocation(locationID string) (int, error) {
	list, _ := f.ListByLocation(locationID)
	return len(list), nil
}

// fakeCloses cierres en memoria.
type fakeCloses struct {
	closes []*entity.DailyClose
}

var _ repository.DailyCloseRepository = (*fakeCloses)(nil)

func (f *fakeCloses) Create(c *entity.DailyClose) error {
	f.closes = append(f.closes, c)
	return nil
}

func (f *fakeCloses) GetByID(id string) (*entity.DailyClose, error) {
	for _, c := range f.closes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCloses) GetByLocationAndDate(locationID string, date time.Time) (*entity.DailyClose, error) {
	for _, c := range f.closes {
		if c.LocationID == locationID && c.Date.Equal(date) {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCloses) ListByLocation(locationID string, r finance.DateRange) ([]*entity.DailyClose, error) {
	var out []*entity.DailyClose
	for _, c := range f.closes {
		if c.LocationID == locationID && r.Contains(c.Date) {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeWithdrawals retiros precargados; Create acumula.
type fakeWithdrawals struct {
	items []*entity.Withdrawal
}

var _ repository.WithdrawalRepository = (*fakeWithdrawals)(nil)

func (f *fakeWithdrawals) Create(w *entity.Withdrawal) error {
	f.items = append(f.items, w)
	return nil
}

func (f *fakeWithdrawals) ListByLocation(locationID string, r finance.DateRange) ([]*entity.Withdrawal, error) {
	var out []*entity.Withdrawal
	for _, w := range f.items {
		if w.LocationID == locationID && r.Contains(w.Timestamp) {
			out = append(out, w)
		}
	}
	return out, nil
}
