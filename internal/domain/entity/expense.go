package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryEmployeeCredit marca un gasto como crédito a empleado.
const CategoryEmployeeCredit = "Crédito a Empleado"

// Expense un gasto de la sede. Inmutable una vez creado.
type Expense struct {
	ID          string
	LocationID  string
	Description string
	Amount      decimal.Decimal
	Category    string
	Timestamp   time.Time
	StaffID     string // solo créditos a empleados
}

// IsEmployeeCredit indica si el gasto es un crédito a empleado.
func (e *Expense) IsEmployeeCredit() bool {
	return e.Category == CategoryEmployeeCredit
}

// OtherIncome un ingreso registrado fuera del POS (alquiler de sillas, eventos, etc.).
type OtherIncome struct {
	ID          string
	LocationID  string
	Description string
	Amount      decimal.Decimal
	Category    string
	Timestamp   time.Time
}
