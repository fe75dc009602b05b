package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para reportes, dashboard y cierres.
// Siempre va contra el pool; los reportes no participan en transacciones.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetPeriodTotals totales de una sede en el rango: ventas, otros ingresos,
// gastos y conteo de transacciones. COALESCE devuelve cero en períodos sin
// movimiento.
func (r *AnalyticsRepo) GetPeriodTotals(
	ctx context.Context,
	locationID string,
	startDate, endDate time.Time,
) (sales, otherIncome, expenses decimal.Decimal, txCount int, err error) {
	const query = `
	SELECT
	    COALESCE((SELECT SUM(total_amount) FROM transactions
	              WHERE location_id = $1 AND end_time BETWEEN $2 AND $3), 0) AS sales,
	    COALESCE((SELECT COUNT(*) FROM transactions
	              WHERE location_id = $1 AND end_time BETWEEN $2 AND $3), 0) AS tx_count,
	    COALESCE((SELECT SUM(amount) FROM other_incomes
	              WHERE location_id = $1 AND ts BETWEEN $2 AND $3), 0)       AS other_income,
	    COALESCE((SELECT SUM(amount) FROM expenses
	              WHERE location_id = $1 AND ts BETWEEN $2 AND $3), 0)       AS expenses`

	err = r.pool.QueryRow(ctx, query, locationID, startDate, endDate).
		Scan(&sales, &txCount, &otherIncome, &expenses)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, 0, fmt.Errorf("period totals: %w", err)
	}
	return sales, otherIncome, expenses, txCount, nil
}

// GetIncomeByPaymentMethod agrupa los ingresos del período por método de pago.
func (r *AnalyticsRepo) GetIncomeByPaymentMethod(
	ctx context.Context,
	locationID string,
	startDate, endDate time.Time,
) ([]repository.PaymentMethodIncome, error) {
	const query = `
	SELECT payment_method, SUM(total_amount) AS total, COUNT(*) AS tx_count
	FROM transactions
	WHERE location_id = $1 AND end_time BETWEEN $2 AND $3
	GROUP BY payment_method
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query, locationID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("income by payment method: %w", err)
	}
	defer rows.Close()

	var out []repository.PaymentMethodIncome
	for rows.Next() {
		var m repository.PaymentMethodIncome
		if err := rows.Scan(&m.Method, &m.Total, &m.TransactionCount); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetSoldItems todas las líneas vendidas en el período. La clasificación por
// rubro es regla de dominio y se hace en el caso de uso, no en SQL.
func (r *AnalyticsRepo) GetSoldItems(
	ctx context.Context,
	locationID string,
	startDate, endDate time.Time,
) ([]entity.TicketItem, error) {
	const query = `
	SELECT i.item_id, i.name, i.price, i.quantity, i.item_type, i.category
	FROM transaction_items i
	JOIN transactions t ON t.id = i.transaction_id
	WHERE t.location_id = $1 AND t.end_time BETWEEN $2 AND $3`

	rows, err := r.pool.Query(ctx, query, locationID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("sold items: %w", err)
	}
	defer rows.Close()

	var out []entity.TicketItem
	for rows.Next() {
		var it entity.TicketItem
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Price, &it.Quantity, &it.Type, &it.Category); err != nil {
			return nil, fmt.Errorf("scan sold item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// GetItemEarnings agrega cantidad, ingreso y costo por ítem vendido, ordenado
// por ingreso descendente. El costo sale de products.cost; los servicios no
// tienen costo.
func (r *AnalyticsRepo) GetItemEarnings(
	ctx context.Context,
	locationID string,
	startDate, endDate time.Time,
) ([]repository.ItemEarningsResult, error) {
	const query = `
	SELECT
	    i.item_id,
	    MAX(i.name)                                         AS name,
	    i.item_type,
	    SUM(i.quantity)                                     AS quantity_sold,
	    SUM(i.price * i.quantity)                           AS revenue,
	    COALESCE(SUM(i.quantity * p.cost), 0)               AS total_cost
	FROM transaction_items i
	JOIN transactions t ON t.id = i.transaction_id
	LEFT JOIN products p ON p.id = i.item_id AND i.item_type = 'product'
	WHERE t.location_id = $1 AND t.end_time BETWEEN $2 AND $3
	GROUP BY i.item_id, i.item_type
	ORDER BY revenue DESC`

	rows, err := r.pool.Query(ctx, query, locationID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("item earnings: %w", err)
	}
	defer rows.Close()

	var out []repository.ItemEarningsResult
	for rows.Next() {
		var res repository.ItemEarningsResult
		if err := rows.Scan(&res.ItemID, &res.Name, &res.ItemType, &res.QuantitySold, &res.Revenue, &res.TotalCost); err != nil {
			return nil, fmt.Errorf("scan item earnings: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// GetBarberWeekItems líneas vendidas por cada barbero de la sede en la semana
// indicada. Devuelve solo los barberos con ventas; los casos de uso completan
// con los que no vendieron.
func (r *AnalyticsRepo) GetBarberWeekItems(
	ctx context.Context,
	locationID string,
	weekStart, weekEnd time.Time,
) ([]repository.BarberWeekResult, error) {
	const query = `
	SELECT t.barber_id, i.item_id, i.name, i.price, i.quantity, i.item_type, i.category
	FROM transaction_items i
	JOIN transactions t ON t.id = i.transaction_id
	WHERE t.location_id = $1 AND t.end_time BETWEEN $2 AND $3
	ORDER BY t.barber_id`

	rows, err := r.pool.Query(ctx, query, locationID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("barber week items: %w", err)
	}
	defer rows.Close()

	byBarber := make(map[string][]entity.TicketItem)
	var order []string
	for rows.Next() {
		var barberID string
		var it entity.TicketItem
		if err := rows.Scan(&barberID, &it.ItemID, &it.Name, &it.Price, &it.Quantity, &it.Type, &it.Category); err != nil {
			return nil, fmt.Errorf("scan barber week item: %w", err)
		}
		if _, seen := byBarber[barberID]; !seen {
			order = append(order, barberID)
		}
		byBarber[barberID] = append(byBarber[barberID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]repository.BarberWeekResult, 0, len(order))
	for _, id := range order {
		out = append(out, repository.BarberWeekResult{BarberID: id, Items: byBarber[id]})
	}
	return out, nil
}
