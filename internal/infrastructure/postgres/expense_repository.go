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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)
var _ repository.OtherIncomeRepository = (*OtherIncomeRepo)(nil)

// ExpenseRepo implementación de ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto.
func (r *ExpenseRepo) Create(e *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, location_id, description, amount, category, ts, staff_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.LocationID, e.Description, e.Amount, e.Category, e.Timestamp, nullIfEmpty(e.StaffID),
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	var e entity.Expense
	var staffID *string
	err := r.q.QueryRow(context.Background(),
		`SELECT id, location_id, description, amount, category, ts, staff_id
		 FROM expenses WHERE id = $1`, id,
	).Scan(&e.ID, &e.LocationID, &e.Description, &e.Amount, &e.Category, &e.Timestamp, &staffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	e.StaffID = deref(staffID)
	return &e, nil
}

// Delete elimina un gasto.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// ListByLocation lista los gastos de una sede cuyo timestamp cae en el rango.
func (r *ExpenseRepo) ListByLocation(locationID string, dr finance.DateRange) ([]*entity.Expense, error) {
	start, end := sqlBounds(dr)
	rows, err := r.q.Query(context.Background(),
		`SELECT id, location_id, description, amount, category, ts, staff_id
		 FROM expenses
		 WHERE location_id = $1 AND ts BETWEEN $2 AND $3
		 ORDER BY ts DESC`,
		locationID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		var staffID *string
		if err := rows.Scan(&e.ID, &e.LocationID, &e.Description, &e.Amount, &e.Category, &e.Timestamp, &staffID); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.StaffID = deref(staffID)
		out = append(out, &e)
	}
	return out, rows.Err()
}

// OtherIncomeRepo implementación de OtherIncomeRepository sobre PostgreSQL.
type OtherIncomeRepo struct {
	q Querier
}

// NewOtherIncomeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOtherIncomeRepository(q Querier) *OtherIncomeRepo {
	return &OtherIncomeRepo{q: q}
}

// Create persiste un ingreso adicional.
func (r *OtherIncomeRepo) Create(i *entity.OtherIncome) error {
	query := `
		INSERT INTO other_incomes (id, location_id, description, amount, category, ts)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.LocationID, i.Description, i.Amount, i.Category, i.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert other income: %w", err)
	}
	return nil
}

// GetByID obtiene un ingreso adicional por ID.
func (r *OtherIncomeRepo) GetByID(id string) (*entity.OtherIncome, error) {
	var i entity.OtherIncome
	err := r.q.QueryRow(context.Background(),
		`SELECT id, location_id, description, amount, category, ts
		 FROM other_incomes WHERE id = $1`, id,
	).Scan(&i.ID, &i.LocationID, &i.Description, &i.Amount, &i.Category, &i.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get other income: %w", err)
	}
	return &i, nil
}

// Delete elimina un ingreso adicional.
func (r *OtherIncomeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM other_incomes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete other income: %w", err)
	}
	return nil
}

// ListByLocation lista los ingresos adicionales de una sede en el rango.
func (r *OtherIncomeRepo) ListByLocation(locationID string, dr finance.DateRange) ([]*entity.OtherIncome, error) {
	start, end := sqlBounds(dr)
	rows, err := r.q.Query(context.Background(),
		`SELECT id, location_id, description, amount, category, ts
		 FROM other_incomes
		 WHERE location_id = $1 AND ts BETWEEN $2 AND $3
		 ORDER BY ts DESC`,
		locationID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("list other incomes: %w", err)
	}
	defer rows.Close()

	var out []*entity.OtherIncome
	for rows.Next() {
		var i entity.OtherIncome
		if err := rows.Scan(&i.ID, &i.LocationID, &i.Description, &i.Amount, &i.Category, &i.Timestamp); err != nil {
			return nil, fmt.Errorf("scan other income: %w", err)
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}
