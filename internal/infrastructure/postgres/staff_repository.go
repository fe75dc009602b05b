package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación de StaffRepository sobre PostgreSQL (usable con pool o tx).
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

const staffColumns = `id, location_id, name, role, rent_amount, commission_percentage, monthly_payment, created_at, updated_at`

// Create persiste un nuevo miembro del personal.
func (r *StaffRepo) Create(s *entity.Staff) error {
	query := `
		INSERT INTO staff (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.LocationID, s.Name, s.Role,
		s.RentAmount, s.CommissionPercentage, s.MonthlyPayment,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// GetByID obtiene un miembro del personal por ID.
func (r *StaffRepo) GetByID(id string) (*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`
	s, err := scanStaff(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return s, nil
}

// Update actualiza un miembro del personal.
func (r *StaffRepo) Update(s *entity.Staff) error {
	query := `
		UPDATE staff
		SET name = $2, role = $3, rent_amount = $4, commission_percentage = $5,
		    monthly_payment = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Role, s.RentAmount, s.CommissionPercentage, s.MonthlyPayment, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

// Delete elimina un miembro del personal.
func (r *StaffRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}

// ListByLocation lista el personal de una sede.
func (r *StaffRepo) ListByLocation(locationID string) ([]*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE location_id = $1 ORDER BY name`
	return r.list(query, locationID)
}

// ListBarbersByLocation lista solo barberos y encargado de una sede.
func (r *StaffRepo) ListBarbersByLocation(locationID string) ([]*entity.Staff, error) {
	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE location_id = $1 AND role IN ('barber', 'head_barber')
		ORDER BY name`
	return r.list(query, locationID)
}

func (r *StaffRepo) list(query string, args ...any) ([]*entity.Staff, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var out []*entity.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanStaff(row pgx.Row) (*entity.Staff, error) {
	var s entity.Staff
	err := row.Scan(
		&s.ID, &s.LocationID, &s.Name, &s.Role,
		&s.RentAmount, &s.CommissionPercentage, &s.MonthlyPayment,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
