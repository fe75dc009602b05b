package reports

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
	"github.com/nordico/barber-api/internal/domain/repository"
)

// SchedulerUser identidad registrada en los cierres automáticos.
const SchedulerUser = "scheduler"

// CashRegisterUseCase estado de caja del día y cierre diario. El cierre es un
// snapshot inmutable: una vez registrado, el día queda cerrado y un segundo
// intento devuelve ErrAlreadyClosed.
type CashRegisterUseCase struct {
	analytics    repository.AnalyticsRepository
	transactions repository.TransactionRepository
	withdrawals  repository.WithdrawalRepository
	closes       repository.DailyCloseRepository
	locations    repository.LocationRepository
	now          func() time.Time
}

// NewCashRegisterUseCase construye el caso de uso.
func NewCashRegisterUseCase(
	analytics repository.AnalyticsRepository,
	transactions repository.TransactionRepository,
	withdrawals repository.WithdrawalRepository,
	closes repository.DailyCloseRepository,
	locations repository.LocationRepository,
	now func() time.Time,
) *CashRegisterUseCase {
	return &CashRegisterUseCase{
		analytics:    analytics,
		transactions: transactions,
		withdrawals:  withdrawals,
		closes:       closes,
		locations:    locations,
		now:          now,
	}
}

// daySnapshot totales del día listos para el resumen o el cierre.
type daySnapshot struct {
	sales       decimal.Decimal
	otherIncome decimal.Decimal
	expenses    decimal.Decimal
	withdrawals decimal.Decimal
	txCount     int
	byMethod    []dto.PaymentMethodTotal
}

func (s daySnapshot) expectedCash() decimal.Decimal {
	return s.sales.Add(s.otherIncome).Sub(s.expenses).Sub(s.withdrawals)
}

func (uc *CashRegisterUseCase) snapshot(ctx context.Context, locationID string, day time.Time) (*daySnapshot, error) {
	dayRange := finance.Today(day)
	start, end := *dayRange.Start, *dayRange.End

	sales, otherIncome, expenses, txCount, err := uc.analytics.GetPeriodTotals(ctx, locationID, start, end)
	if err != nil {
		return nil, err
	}
	methods, err := uc.analytics.GetIncomeByPaymentMethod(ctx, locationID, start, end)
	if err != nil {
		return nil, err
	}
	ws, err := uc.withdrawals.ListByLocation(locationID, dayRange)
	if err != nil {
		return nil, err
	}

	snap := &daySnapshot{
		sales:       sales,
		otherIncome: otherIncome,
		expenses:    expenses,
		withdrawals: decimal.Zero,
		txCount:     txCount,
		byMethod:    make([]dto.PaymentMethodTotal, 0, len(methods)),
	}
	for _, w := range ws {
		snap.withdrawals = snap.withdrawals.Add(w.Amount)
	}
	for _, m := range methods {
		snap.byMethod = append(snap.byMethod, dto.PaymentMethodTotal{
			PaymentMethod:    m.Method,
			Total:            m.Total,
			TransactionCount: m.TransactionCount,
		})
	}
	return snap, nil
}

// Summary estado de caja del día en curso, sin cerrar. Cada método de pago
// lleva además la lista de ventas que lo componen, para el arqueo manual.
func (uc *CashRegisterUseCase) Summary(ctx context.Context, locationID string) (*dto.CashRegisterSummaryResponse, error) {
	day := uc.now()
	snap, err := uc.snapshot(ctx, locationID, day)
	if err != nil {
		return nil, err
	}
	sales, err := uc.transactions.ListByLocation(locationID, finance.Today(day))
	if err != nil {
		return nil, err
	}
	byMethod := make(map[string][]dto.TransactionRef, len(snap.byMethod))
	for _, tx := range sales {
		byMethod[tx.PaymentMethod] = append(byMethod[tx.PaymentMethod], dto.TransactionRef{
			ID:           tx.ID,
			CustomerName: tx.CustomerName,
			BarberID:     tx.BarberID,
			Total:        tx.TotalAmount,
			EndTime:      tx.EndTime,
		})
	}
	for i := range snap.byMethod {
		snap.byMethod[i].Transactions = byMethod[snap.byMethod[i].PaymentMethod]
	}
	return &dto.CashRegisterSummaryResponse{
		LocationID:       locationID,
		Date:             day.Format(dateLayout),
		TotalSales:       snap.sales,
		TotalOtherIncome: snap.otherIncome,
		TotalExpenses:    snap.expenses,
		TotalWithdrawals: snap.withdrawals,
		ExpectedCash:     snap.expectedCash(),
		ByPaymentMethod:  snap.byMethod,
		TransactionCount: snap.txCount,
	}, nil
}

// Close registra el cierre del día en curso. Falla con ErrAlreadyClosed si el
// día ya fue cerrado para la sede.
func (uc *CashRegisterUseCase) Close(ctx context.Context, in dto.CloseDayRequest, closedBy string) (*dto.DailyCloseResponse, error) {
	return uc.close(ctx, in.LocationID, in.CountedCash, in.Notes, closedBy, false)
}

// AutoClose cierre automático disparado por el scheduler al final del día.
// El efectivo contado queda en cero y el cierre se marca como automático.
// Si el día ya fue cerrado a mano, no hace nada.
func (uc *CashRegisterUseCase) AutoClose(ctx context.Context, locationID string) (*dto.DailyCloseResponse, error) {
	resp, err := uc.close(ctx, locationID, decimal.Zero, "cierre automático", SchedulerUser, true)
	if errors.Is(err, domain.ErrAlreadyClosed) {
		return nil, nil
	}
	return resp, err
}

func (uc *CashRegisterUseCase) close(ctx context.Context, locationID string, countedCash decimal.Decimal, notes, closedBy string, automatic bool) (*dto.DailyCloseResponse, error) {
	loc, err := uc.locations.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	day := uc.now()
	dayStart := finance.StartOfDay(day)

	existing, err := uc.closes.GetByLocationAndDate(locationID, dayStart)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyClosed
	}

	snap, err := uc.snapshot(ctx, locationID, day)
	if err != nil {
		return nil, err
	}
	expected := snap.expectedCash()
	c := &entity.DailyClose{
		ID:               uuid.New().String(),
		LocationID:       locationID,
		Date:             dayStart,
		TotalSales:       snap.sales,
		TotalOtherIncome: snap.otherIncome,
		TotalExpenses:    snap.expenses,
		TotalWithdrawals: snap.withdrawals,
		ExpectedCash:     expected,
		CountedCash:      countedCash,
		Difference:       countedCash.Sub(expected),
		TransactionCount: snap.txCount,
		Notes:            notes,
		Automatic:        automatic,
		ClosedBy:         closedBy,
		CreatedAt:        day,
	}
	if err := uc.closes.Create(c); err != nil {
		return nil, err
	}
	return toDailyCloseResponse(c), nil
}

// GetClose obtiene un cierre por ID.
func (uc *CashRegisterUseCase) GetClose(id string) (*dto.DailyCloseResponse, error) {
	c, err := uc.closes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toDailyCloseResponse(c), nil
}

// History historial de cierres de una sede en el período.
func (uc *CashRegisterUseCase) History(locationID string, q dto.PeriodQuery) (*dto.DailyCloseListResponse, error) {
	r, err := ResolvePeriod(q, uc.now())
	if err != nil {
		return nil, err
	}
	list, err := uc.closes.ListByLocation(locationID, r)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DailyCloseResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toDailyCloseResponse(c))
	}
	return &dto.DailyCloseListResponse{Items: items}, nil
}

func toDailyCloseResponse(c *entity.DailyClose) *dto.DailyCloseResponse {
	if c == nil {
		return nil
	}
	return &dto.DailyCloseResponse{
		ID:               c.ID,
		LocationID:       c.LocationID,
		Date:             c.Date.Format(dateLayout),
		TotalSales:       c.TotalSales,
		TotalOtherIncome: c.TotalOtherIncome,
		TotalExpenses:    c.TotalExpenses,
		TotalWithdrawals: c.TotalWithdrawals,
		ExpectedCash:     c.ExpectedCash,
		CountedCash:      c.CountedCash,
		Difference:       c.Difference,
		TransactionCount: c.TransactionCount,
		Notes:            c.Notes,
		Automatic:        c.Automatic,
		ClosedBy:         c.ClosedBy,
		ClosedAt:         c.CreatedAt,
	}
}
