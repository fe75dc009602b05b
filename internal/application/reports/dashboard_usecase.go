package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
	"github.com/nordico/barber-api/internal/domain/repository"
)

// DashboardUseCase resumen financiero de una sede: totales del período, desglose
// por método de pago y por rubro de ingreso, más los conteos operativos del
// momento (servicios activos y personal de la sede).
//
// Fuente de datos: AnalyticsRepository (consultas read-only); no toca tablas
// directamente salvo los conteos de tickets y personal.
type DashboardUseCase struct {
	analytics repository.AnalyticsRepository
	tickets   repository.TicketRepository
	staff     repository.StaffRepository
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analytics repository.AnalyticsRepository,
	tickets repository.TicketRepository,
	staff repository.StaffRepository,
	now func() time.Time,
) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics, tickets: tickets, staff: staff, now: now}
}

// GetSummary construye el resumen de la sede para el período pedido.
//
// Cinco consultas en paralelo:
//  1. GetPeriodTotals            → ventas, otros ingresos, gastos, conteo
//  2. GetIncomeByPaymentMethod   → desglose por método de pago
//  3. GetSoldItems               → líneas para clasificar por rubro
//  4. CountByLocation (tickets)  → servicios activos ahora mismo
//  5. ListByLocation (staff)     → tamaño del equipo de la sede
func (uc *DashboardUseCase) GetSummary(ctx context.Context, locationID string, q dto.PeriodQuery) (*dto.DashboardResponse, error) {
	r, err := ResolvePeriod(q, uc.now())
	if err != nil {
		return nil, err
	}
	start, end := rangeBounds(r)

	type totalsResult struct {
		sales, otherIncome, expenses decimal.Decimal
		txCount                      int
		err                          error
	}
	type methodsResult struct {
		methods []repository.PaymentMethodIncome
		err     error
	}
	type itemsResult struct {
		items []entity.TicketItem
		err   error
	}
	type countResult struct {
		n   int
		err error
	}

	totalsCh := make(chan totalsResult, 1)
	methodsCh := make(chan methodsResult, 1)
	itemsCh := make(chan itemsResult, 1)
	activeCh := make(chan countResult, 1)
	staffCh := make(chan countResult, 1)

	go func() {
		sales, other, expenses, count, err := uc.analytics.GetPeriodTotals(ctx, locationID, start, end)
		totalsCh <- totalsResult{sales, other, expenses, count, err}
	}()
	go func() {
		methods, err := uc.analytics.GetIncomeByPaymentMethod(ctx, locationID, start, end)
		methodsCh <- methodsResult{methods, err}
	}()
	go func() {
		items, err := uc.analytics.GetSoldItems(ctx, locationID, start, end)
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		n, err := uc.tickets.CountByLocation(locationID)
		activeCh <- countResult{n, err}
	}()
	go func() {
		team, err := uc.staff.ListByLocation(locationID)
		staffCh <- countResult{len(team), err}
	}()

	totals := <-totalsCh
	methods := <-methodsCh
	items := <-itemsCh
	active := <-activeCh
	team := <-staffCh
	if totals.err != nil {
		return nil, totals.err
	}
	if methods.err != nil {
		return nil, methods.err
	}
	if items.err != nil {
		return nil, items.err
	}
	if active.err != nil {
		return nil, active.err
	}
	if team.err != nil {
		return nil, team.err
	}

	byMethod := make([]dto.PaymentMethodTotal, 0, len(methods.methods))
	for _, m := range methods.methods {
		byMethod = append(byMethod, dto.PaymentMethodTotal{
			PaymentMethod:    m.Method,
			Total:            m.Total,
			TransactionCount: m.TransactionCount,
		})
	}

	bucketTotals := make(map[finance.IncomeBucket]decimal.Decimal, len(bucketOrder))
	for _, it := range items.items {
		bucket := finance.Classify(it)
		if bucket == finance.BucketNone {
			continue
		}
		bucketTotals[bucket] = bucketTotals[bucket].Add(it.Subtotal())
	}
	byBucket := make([]dto.CategoryIncomeResponse, 0, len(bucketOrder))
	for _, b := range bucketOrder {
		byBucket = append(byBucket, dto.CategoryIncomeResponse{
			Bucket: string(b),
			Total:  bucketTotals[b],
		})
	}

	totalIncome := totals.sales.Add(totals.otherIncome)
	return &dto.DashboardResponse{
		LocationID:       locationID,
		Period:           q,
		TotalSales:       totals.sales,
		TotalOtherIncome: totals.otherIncome,
		TotalIncome:      totalIncome,
		TotalExpenses:    totals.expenses,
		NetProfit:        totalIncome.Sub(totals.expenses),
		TransactionCount: totals.txCount,
		ActiveServices:   active.n,
		StaffCount:       team.n,
		ByPaymentMethod:  byMethod,
		ByBucket:         byBucket,
	}, nil
}
