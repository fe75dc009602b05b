package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStaffRequest alta de un miembro del personal. Los montos ausentes se
// tratan como cero (contrato explícito: numérico faltante ⇒ 0).
type CreateStaffRequest struct {
	LocationID           string          `json:"location_id"`
	Name                 string          `json:"name"`
	Role                 string          `json:"role"`
	RentAmount           decimal.Decimal `json:"rent_amount"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	MonthlyPayment       decimal.Decimal `json:"monthly_payment"`
}

// UpdateStaffRequest campos opcionales; nil = sin cambio.
type UpdateStaffRequest struct {
	Name                 *string          `json:"name"`
	Role                 *string          `json:"role"`
	RentAmount           *decimal.Decimal `json:"rent_amount"`
	CommissionPercentage *decimal.Decimal `json:"commission_percentage"`
	MonthlyPayment       *decimal.Decimal `json:"monthly_payment"`
}

// StaffResponse un miembro del personal.
type StaffResponse struct {
	ID                   string          `json:"id"`
	LocationID           string          `json:"location_id"`
	Name                 string          `json:"name"`
	Role                 string          `json:"role"`
	RentAmount           decimal.Decimal `json:"rent_amount"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	MonthlyPayment       decimal.Decimal `json:"monthly_payment"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// StaffListResponse listado de personal de una sede.
type StaffListResponse struct {
	Items []StaffResponse `json:"items"`
}
