package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
	"github.com/nordico/barber-api/internal/domain/repository"
)

// bucketOrder orden estable de los rubros en los reportes.
var bucketOrder = []finance.IncomeBucket{
	finance.BucketBarberService,
	finance.BucketGamerZone,
	finance.BucketSnacks,
	finance.BucketProducts,
}

// IncomeUseCase reportes de ingresos: por rubro, por ítem y producción de
// barberos en un período.
type IncomeUseCase struct {
	staff        repository.StaffRepository
	transactions repository.TransactionRepository
	analytics    repository.AnalyticsRepository
	now          func() time.Time
}

// NewIncomeUseCase construye el caso de uso.
func NewIncomeUseCase(
	staff repository.StaffRepository,
	transactions repository.TransactionRepository,
	analytics repository.AnalyticsRepository,
	now func() time.Time,
) *IncomeUseCase {
	return &IncomeUseCase{staff: staff, transactions: transactions, analytics: analytics, now: now}
}

// ByCategory agrupa los ingresos del período por rubro. Las cortesías
// clasifican a BucketNone y quedan fuera del reporte.
func (uc *IncomeUseCase) ByCategory(ctx context.Context, locationID string, q dto.PeriodQuery) (*dto.CategoryIncomeReportResponse, error) {
	r, err := ResolvePeriod(q, uc.now())
	if err != nil {
		return nil, err
	}
	start, end := rangeBounds(r)
	items, err := uc.analytics.GetSoldItems(ctx, locationID, start, end)
	if err != nil {
		return nil, err
	}

	totals := make(map[finance.IncomeBucket]decimal.Decimal, len(bucketOrder))
	for _, it := range items {
		bucket := finance.Classify(it)
		if bucket == finance.BucketNone {
			continue
		}
		totals[bucket] = totals[bucket].Add(it.Subtotal())
	}

	out := &dto.CategoryIncomeReportResponse{
		LocationID: locationID,
		Period:     q,
		Buckets:    make([]dto.CategoryIncomeResponse, 0, len(bucketOrder)),
		Total:      decimal.Zero,
	}
	for _, b := range bucketOrder {
		total := totals[b]
		out.Buckets = append(out.Buckets, dto.CategoryIncomeResponse{
			Bucket: string(b),
			Total:  total,
		})
		out.Total = out.Total.Add(total)
	}
	return out, nil
}

// ItemEarnings reporta cantidad vendida, ingreso y margen por ítem del
// catálogo en el período. El costo solo aplica a productos.
func (uc *IncomeUseCase) ItemEarnings(ctx context.Context, locationID string, q dto.PeriodQuery) (*dto.ItemEarningsReportResponse, error) {
	r, err := ResolvePeriod(q, uc.now())
	if err != nil {
		return nil, err
	}
	start, end := rangeBounds(r)
	results, err := uc.analytics.GetItemEarnings(ctx, locationID, start, end)
	if err != nil {
		return nil, err
	}
	out := &dto.ItemEarningsReportResponse{
		LocationID: locationID,
		Period:     q,
		Items:      make([]dto.ItemEarningsResponse, 0, len(results)),
	}
	for _, res := range results {
		out.Items = append(out.Items, dto.ItemEarningsResponse{
			ItemID:       res.ItemID,
			Name:         res.Name,
			ItemType:     res.ItemType,
			QuantitySold: res.QuantitySold,
			Revenue:      res.Revenue,
			Cost:         res.TotalCost,
			Profit:       res.Revenue.Sub(res.TotalCost),
		})
	}
	return out, nil
}

// BarberReport producción de un barbero en el período: conteo e ingreso de
// servicios y productos vendidos.
func (uc *IncomeUseCase) BarberReport(locationID, barberID string, q dto.PeriodQuery) (*dto.BarberReportResponse, error) {
	barber, err := uc.staff.GetByID(barberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, domain.ErrNotFound
	}
	r, err := ResolvePeriod(q, uc.now())
	if err != nil {
		return nil, err
	}
	txs, err := uc.transactions.ListByBarber(locationID, barberID, r)
	if err != nil {
		return nil, err
	}

	out := &dto.BarberReportResponse{
		BarberID:         barberID,
		BarberName:       barber.Name,
		Period:           q,
		ServicesRevenue:  decimal.Zero,
		ProductsRevenue:  decimal.Zero,
		TransactionCount: len(txs),
	}
	for _, tx := range txs {
		for _, it := range tx.Items {
			switch it.Type {
			case entity.ItemTypeService:
				out.ServicesCount += it.Quantity
				out.ServicesRevenue = out.ServicesRevenue.Add(it.Subtotal())
			case entity.ItemTypeProduct:
				out.ProductsCount += it.Quantity
				out.ProductsRevenue = out.ProductsRevenue.Add(it.Subtotal())
			}
		}
	}
	out.TotalRevenue = out.ServicesRevenue.Add(out.ProductsRevenue)
	return out, nil
}
