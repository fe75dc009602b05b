package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
	"github.com/nordico/barber-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL
// (usable con pool o tx). Las líneas van en transaction_items para que los
// reportes agreguen con SQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste la venta con sus líneas. Debe llamarse dentro de una
// transacción de base de datos para que cabecera y líneas sean atómicas.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, location_id, customer_id, customer_name, barber_id,
		                          total_amount, payment_method, reference_number,
		                          start_time, end_time, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.LocationID, nullIfEmpty(tx.CustomerID), tx.CustomerName, tx.BarberID,
		tx.TotalAmount, tx.PaymentMethod, nullIfEmpty(tx.ReferenceNumber),
		tx.StartTime, tx.EndTime, nullIfEmpty(tx.RecordedBy),
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	for i, it := range tx.Items {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO transaction_items (transaction_id, position, item_id, name, price, quantity, item_type, category)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			tx.ID, i, it.ItemID, it.Name, it.Price, it.Quantity, it.Type, it.Category,
		)
		if err != nil {
			return fmt.Errorf("insert transaction item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	var t entity.Transaction
	var customerID, reference, recordedBy *string
	err := r.q.QueryRow(context.Background(),
		`SELECT id, location_id, customer_id, customer_name, barber_id,
		        total_amount, payment_method, reference_number, start_time, end_time, recorded_by
		 FROM transactions WHERE id = $1`, id,
	).Scan(&t.ID, &t.LocationID, &customerID, &t.CustomerName, &t.BarberID,
		&t.TotalAmount, &t.PaymentMethod, &reference, &t.StartTime, &t.EndTime, &recordedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	t.CustomerID = deref(customerID)
	t.ReferenceNumber = deref(reference)
	t.RecordedBy = deref(recordedBy)

	items, err := r.itemsFor([]string{t.ID})
	if err != nil {
		return nil, err
	}
	t.Items = items[t.ID]
	return &t, nil
}

// ListByLocation lista las ventas de una sede cuyo EndTime cae en el rango.
func (r *TransactionRepo) ListByLocation(locationID string, dr finance.DateRange) ([]*entity.Transaction, error) {
	query := `
		SELECT id, location_id, customer_id, customer_name, barber_id,
		       total_amount, payment_method, reference_number, start_time, end_time, recorded_by
		FROM transactions
		WHERE location_id = $1 AND end_time BETWEEN $2 AND $3
		ORDER BY end_time DESC`
	start, end := sqlBounds(dr)
	return r.list(query, locationID, start, end)
}

// ListByBarber lista las ventas atendidas por un barbero en el rango.
func (r *TransactionRepo) ListByBarber(locationID, barberID string, dr finance.DateRange) ([]*entity.Transaction, error) {
	query := `
		SELECT id, location_id, customer_id, customer_name, barber_id,
		       total_amount, payment_method, reference_number, start_time, end_time, recorded_by
		FROM transactions
		WHERE location_id = $1 AND barber_id = $2 AND end_time BETWEEN $3 AND $4
		ORDER BY end_time DESC`
	start, end := sqlBounds(dr)
	return r.list(query, locationID, barberID, start, end)
}

func (r *TransactionRepo) list(query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []*entity.Transaction
	var ids []string
	for rows.Next() {
		var t entity.Transaction
		var customerID, reference, recordedBy *string
		if err := rows.Scan(&t.ID, &t.LocationID, &customerID, &t.CustomerName, &t.BarberID,
			&t.TotalAmount, &t.PaymentMethod, &reference, &t.StartTime, &t.EndTime, &recordedBy); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.CustomerID = deref(customerID)
		t.ReferenceNumber = deref(reference)
		t.RecordedBy = deref(recordedBy)
		out = append(out, &t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	items, err := r.itemsFor(ids)
	if err != nil {
		return nil, err
	}
	for _, t := range out {
		t.Items = items[t.ID]
	}
	return out, nil
}

// itemsFor carga las líneas de un conjunto de ventas en una sola consulta.
func (r *TransactionRepo) itemsFor(ids []string) (map[string][]entity.TicketItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT transaction_id, item_id, name, price, quantity, item_type, category
		 FROM transaction_items
		 WHERE transaction_id = ANY($1)
		 ORDER BY transaction_id, position`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.TicketItem, len(ids))
	for rows.Next() {
		var txID string
		var it entity.TicketItem
		if err := rows.Scan(&txID, &it.ItemID, &it.Name, &it.Price, &it.Quantity, &it.Type, &it.Category); err != nil {
			return nil, fmt.Errorf("scan transaction item: %w", err)
		}
		out[txID] = append(out[txID], it)
	}
	return out, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
