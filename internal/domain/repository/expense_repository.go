package repository

import (
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
)

// ExpenseRepository puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(e *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	Delete(id string) error
	ListByLocation(locationID string, r finance.DateRange) ([]*entity.Expense, error)
}

// OtherIncomeRepository puerto de persistencia para ingresos fuera del POS.
type OtherIncomeRepository interface {
	Create(i *entity.OtherIncome) error
	GetByID(id string) (*entity.OtherIncome, error)
	Delete(id string) error
	ListByLocation(locationID string, r finance.DateRange) ([]*entity.OtherIncome, error)
}
