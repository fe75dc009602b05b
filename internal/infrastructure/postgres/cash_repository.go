package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
	"github.com/nordico/barber-api/internal/domain/repository"
)

var _ repository.DailyCloseRepository = (*DailyCloseRepo)(nil)
var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

// DailyCloseRepo implementación de DailyCloseRepository sobre PostgreSQL.
type DailyCloseRepo struct {
	q Querier
}

// NewDailyCloseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDailyCloseRepository(q Querier) *DailyCloseRepo {
	return &DailyCloseRepo{q: q}
}

const dailyCloseColumns = `id, location_id, close_date, total_sales, total_other_income,
	total_expenses, total_withdrawals, expected_cash, counted_cash, difference,
	transaction_count, notes, automatic, closed_by, created_at`

// Create persiste el cierre. El índice único (location_id, close_date) protege
// contra doble cierre bajo concurrencia.
func (r *DailyCloseRepo) Create(c *entity.DailyClose) error {
	query := `
		INSERT INTO daily_closes (` + dailyCloseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.LocationID, c.Date, c.TotalSales, c.TotalOtherIncome,
		c.TotalExpenses, c.TotalWithdrawals, c.ExpectedCash, c.CountedCash, c.Difference,
		c.TransactionCount, c.Notes, c.Automatic, c.ClosedBy, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyClosed
		}
		return fmt.Errorf("insert daily close: %w", err)
	}
	return nil
}

// GetByID obtiene un cierre por ID.
func (r *DailyCloseRepo) GetByID(id string) (*entity.DailyClose, error) {
	query := `SELECT ` + dailyCloseColumns + ` FROM daily_closes WHERE id = $1`
	c, err := scanDailyClose(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily close: %w", err)
	}
	return c, nil
}

// GetByLocationAndDate busca el cierre de un día concreto (nil si no existe).
func (r *DailyCloseRepo) GetByLocationAndDate(locationID string, date time.Time) (*entity.DailyClose, error) {
	query := `SELECT ` + dailyCloseColumns + ` FROM daily_closes
		WHERE location_id = $1 AND close_date = $2`
	c, err := scanDailyClose(r.q.QueryRow(context.Background(), query, locationID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily close by date: %w", err)
	}
	return c, nil
}

// ListByLocation historial de cierres de una sede en el rango, el más reciente primero.
func (r *DailyCloseRepo) ListByLocation(locationID string, dr finance.DateRange) ([]*entity.DailyClose, error) {
	start, end := sqlBounds(dr)
	query := `SELECT ` + dailyCloseColumns + ` FROM daily_closes
		WHERE location_id = $1 AND close_date BETWEEN $2 AND $3
		ORDER BY close_date DESC`
	rows, err := r.q.Query(context.Background(), query, locationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list daily closes: %w", err)
	}
	defer rows.Close()

	var out []*entity.DailyClose
	for rows.Next() {
		c, err := scanDailyClose(rows)
		if err != nil {
			return nil, fmt.Errorf("scan daily close: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanDailyClose(row pgx.Row) (*entity.DailyClose, error) {
	var c entity.DailyClose
	err := row.Scan(
		&c.ID, &c.LocationID, &c.Date, &c.TotalSales, &c.TotalOtherIncome,
		&c.TotalExpenses, &c.TotalWithdrawals, &c.ExpectedCash, &c.CountedCash, &c.Difference,
		&c.TransactionCount, &c.Notes, &c.Automatic, &c.ClosedBy, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// WithdrawalRepo implementación de WithdrawalRepository sobre PostgreSQL.
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

// Create persiste un retiro de caja.
func (r *WithdrawalRepo) Create(w *entity.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (id, location_id, amount, reason, ts, authorized_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.LocationID, w.Amount, w.Reason, w.Timestamp, w.AuthorizedBy,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// ListByLocation lista los retiros de una sede en el rango.
func (r *WithdrawalRepo) ListByLocation(locationID string, dr finance.DateRange) ([]*entity.Withdrawal, error) {
	start, end := sqlBounds(dr)
	rows, err := r.q.Query(context.Background(),
		`SELECT id, location_id, amount, reason, ts, authorized_by
		 FROM withdrawals
		 WHERE location_id = $1 AND ts BETWEEN $2 AND $3
		 ORDER BY ts DESC`,
		locationID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()

	var out []*entity.Withdrawal
	for rows.Next() {
		var w entity.Withdrawal
		if err := rows.Scan(&w.ID, &w.LocationID, &w.Amount, &w.Reason, &w.Timestamp, &w.AuthorizedBy); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		out = append(out, &w)
	}
	return out, rows.Err()
}
