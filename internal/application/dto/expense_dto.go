package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest registra un gasto de la sede.
type CreateExpenseRequest struct {
	LocationID  string          `json:"location_id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	StaffID     string          `json:"staff_id"` // requerido solo para créditos a empleado
}

// ExpenseResponse un gasto registrado.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	LocationID  string          `json:"location_id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	StaffID     string          `json:"staff_id,omitempty"`
	Date        time.Time       `json:"date"`
}

// ExpenseListResponse gastos de un período con su total.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

// CreateOtherIncomeRequest registra un ingreso fuera del POS.
type CreateOtherIncomeRequest struct {
	LocationID  string          `json:"location_id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}

// OtherIncomeResponse un ingreso adicional.
type OtherIncomeResponse struct {
	ID          string          `json:"id"`
	LocationID  string          `json:"location_id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// OtherIncomeListResponse ingresos adicionales de un período.
type OtherIncomeListResponse struct {
	Items []OtherIncomeResponse `json:"items"`
	Total decimal.Decimal       `json:"total"`
}
