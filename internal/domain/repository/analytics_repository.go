package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nordico/barber-api/internal/domain/entity"
)

// PaymentMethodIncome ingresos agregados de un método de pago en el período.
type PaymentMethodIncome struct {
	Method           string
	Total            decimal.Decimal
	TransactionCount int
}

// ItemEarningsResult resultado crudo de la consulta de ganancia por ítem.
// Cost solo aplica a productos (se toma de products.cost); para servicios es cero.
type ItemEarningsResult struct {
	ItemID       string
	Name         string
	ItemType     string // "service" | "product"
	QuantitySold int
	Revenue      decimal.Decimal
	TotalCost    decimal.Decimal
}

// BarberWeekResult líneas de venta de un barbero dentro de una semana,
// aplanadas para el cálculo de comisión.
type BarberWeekResult struct {
	BarberID string
	Items    []entity.TicketItem
}

// AnalyticsRepository consultas de solo lectura para reportes y dashboards.
// Las implementaciones no modifican datos.
type AnalyticsRepository interface {
	// GetPeriodTotals devuelve ingresos de ventas, otros ingresos, gastos y el
	// número de transacciones de una sede en el rango. Usa COALESCE para
	// devolver cero en períodos sin movimiento.
	GetPeriodTotals(
		ctx context.Context,
		locationID string,
		startDate, endDate time.Time,
	) (sales, otherIncome, expenses decimal.Decimal, txCount int, err error)

	// GetIncomeByPaymentMethod agrupa los ingresos del período por método de pago.
	GetIncomeByPaymentMethod(
		ctx context.Context,
		locationID string,
		startDate, endDate time.Time,
	) ([]PaymentMethodIncome, error)

	// GetSoldItems devuelve todas las líneas vendidas en el período (para
	// clasificación por bucket en el caso de uso).
	GetSoldItems(
		ctx context.Context,
		locationID string,
		startDate, endDate time.Time,
	) ([]entity.TicketItem, error)

	// GetItemEarnings agrega cantidad, ingreso y costo por ítem vendido,
	// ordenado por ingreso descendente.
	GetItemEarnings(
		ctx context.Context,
		locationID string,
		startDate, endDate time.Time,
	) ([]ItemEarningsResult, error)

	// GetBarberWeekItems devuelve, por barbero, las líneas vendidas en la
	// semana indicada (solo barberos con ventas).
	GetBarberWeekItems(
		ctx context.Context,
		locationID string,
		weekStart, weekEnd time.Time,
	) ([]BarberWeekResult, error)
}
