package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)
var _ repository.QueueRepository = (*QueueRepo)(nil)

// TicketRepo implementación de TicketRepository sobre PostgreSQL (usable con
// pool o tx). Los tickets activos son efímeros, así que las líneas van como
// JSONB en la misma fila; solo las ventas cerradas se normalizan.
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

// Create persiste un ticket activo.
func (r *TicketRepo) Create(t *entity.ActiveTicket) error {
	items, err := json.Marshal(t.Items)
	if err != nil {
		return fmt.Errorf("marshal ticket items: %w", err)
	}
	query := `
		INSERT INTO active_tickets (id, location_id, customer_id, customer_name, barber_id, items, total_amount, start_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		t.ID, t.LocationID, nullIfEmpty(t.CustomerID), t.CustomerName, t.BarberID,
		items, t.TotalAmount, t.StartTime,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket activo por ID.
func (r *TicketRepo) GetByID(id string) (*entity.ActiveTicket, error) {
	t, err := scanTicket(r.q.QueryRow(context.Background(),
		`SELECT id, location_id, customer_id, customer_name, barber_id, items, total_amount, start_time
		 FROM active_tickets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return t, nil
}

// Update reemplaza líneas y total del ticket.
func (r *TicketRepo) Update(t *entity.ActiveTicket) error {
	items, err := json.Marshal(t.Items)
	if err != nil {
		return fmt.Errorf("marshal ticket items: %w", err)
	}
	_, err = r.q.Exec(context.Background(),
		`UPDATE active_tickets SET items = $2, total_amount = $3 WHERE id = $1`,
		t.ID, items, t.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	return nil
}

// Delete elimina un ticket (cancelado o convertido en venta).
func (r *TicketRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM active_tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket: %w", err)
	}
	return nil
}

// ListByLocation lista los tickets abiertos de una sede por orden de apertura.
func (r *TicketRepo) ListByLocation(locationID string) ([]*entity.ActiveTicket, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, location_id, customer_id, customer_name, barber_id, items, total_amount, start_time
		 FROM active_tickets WHERE location_id = $1 ORDER BY start_time`,
		locationID,
	)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var out []*entity.ActiveTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CountByLocation cuenta los tickets abiertos de una sede.
func (r *TicketRepo) CountByLocation(locationID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM active_tickets WHERE location_id = $1`, locationID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return n, nil
}

func scanTicket(row pgx.Row) (*entity.ActiveTicket, error) {
	var t entity.ActiveTicket
	var customerID *string
	var items []byte
	err := row.Scan(&t.ID, &t.LocationID, &customerID, &t.CustomerName, &t.BarberID,
		&items, &t.TotalAmount, &t.StartTime)
	if err != nil {
		return nil, err
	}
	t.CustomerID = deref(customerID)
	if err := json.Unmarshal(items, &t.Items); err != nil {
		return nil, fmt.Errorf("unmarshal ticket items: %w", err)
	}
	return &t, nil
}

// QueueRepo cola de turnos por sede, una fila por sede con la lista de IDs
// como JSONB.
type QueueRepo struct {
	q Querier
}

// NewQueueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQueueRepository(q Querier) *QueueRepo {
	return &QueueRepo{q: q}
}

// Get devuelve el orden actual; lista vacía si la sede no tiene cola.
func (r *QueueRepo) Get(locationID string) ([]string, error) {
	var raw []byte
	err := r.q.QueryRow(context.Background(),
		`SELECT barber_ids FROM barber_queues WHERE location_id = $1`, locationID,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("get queue: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("unmarshal queue: %w", err)
	}
	return ids, nil
}

// Save reemplaza la cola completa de la sede.
func (r *QueueRepo) Save(locationID string, barberIDs []string) error {
	raw, err := json.Marshal(barberIDs)
	if err != nil {
		return fmt.Errorf("marshal queue: %w", err)
	}
	_, err = r.q.Exec(context.Background(),
		`INSERT INTO barber_queues (location_id, barber_ids, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (location_id) DO UPDATE SET barber_ids = $2, updated_at = now()`,
		locationID, raw,
	)
	if err != nil {
		return fmt.Errorf("save queue: %w", err)
	}
	return nil
}
