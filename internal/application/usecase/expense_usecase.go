package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
	"github.com/nordico/barber-api/internal/domain/repository"
)

// ExpenseUseCase registro y consulta de gastos por sede.
type ExpenseUseCase struct {
	repo  repository.ExpenseRepository
	staff repository.StaffRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, staff repository.StaffRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, staff: staff}
}

// Create registra un gasto. Los créditos a empleado exigen un StaffID válido
// para poder descontarlos luego de la nómina.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Description == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Category == entity.CategoryEmployeeCredit {
		if in.StaffID == "" {
			return nil, domain.ErrInvalidInput
		}
		s, err := uc.staff.GetByID(in.StaffID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, domain.ErrNotFound
		}
	}
	e := &entity.Expense{
		ID:          uuid.New().String(),
		LocationID:  in.LocationID,
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		Timestamp:   time.Now(),
		StaffID:     in.StaffID,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// Delete elimina un gasto registrado por error.
func (uc *ExpenseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ListByLocation lista los gastos de una sede en el rango, con su total.
func (uc *ExpenseUseCase) ListByLocation(locationID string, r finance.DateRange) (*dto.ExpenseListResponse, error) {
	list, err := uc.repo.ListByLocation(locationID, r)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	total := decimal.Zero
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
		total = total.Add(e.Amount)
	}
	return &dto.ExpenseListResponse{Items: items, Total: total}, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:          e.ID,
		LocationID:  e.LocationID,
		Description: e.Description,
		Category:    e.Category,
		Amount:      e.Amount,
		StaffID:     e.StaffID,
		Date:        e.Timestamp,
	}
}

// OtherIncomeUseCase ingresos registrados fuera del POS (alquiler de sillas,
// eventos, ajustes).
type OtherIncomeUseCase struct {
	repo repository.OtherIncomeRepository
}

// NewOtherIncomeUseCase construye el caso de uso.
func NewOtherIncomeUseCase(repo repository.OtherIncomeRepository) *OtherIncomeUseCase {
	return &OtherIncomeUseCase{repo: repo}
}

// Create registra un ingreso adicional.
func (uc *OtherIncomeUseCase) Create(in dto.CreateOtherIncomeRequest) (*dto.OtherIncomeResponse, error) {
	if in.Description == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	i := &entity.OtherIncome{
		ID:          uuid.New().String(),
		LocationID:  in.LocationID,
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		Timestamp:   time.Now(),
	}
	if err := uc.repo.Create(i); err != nil {
		return nil, err
	}
	return toOtherIncomeResponse(i), nil
}

// Delete elimina un ingreso adicional.
func (uc *OtherIncomeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ListByLocation lista los ingresos adicionales de una sede en el rango.
func (uc *OtherIncomeUseCase) ListByLocation(locationID string, r finance.DateRange) (*dto.OtherIncomeListResponse, error) {
	list, err := uc.repo.ListByLocation(locationID, r)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OtherIncomeResponse, 0, len(list))
	total := decimal.Zero
	for _, i := range list {
		items = append(items, *toOtherIncomeResponse(i))
		total = total.Add(i.Amount)
	}
	return &dto.OtherIncomeListResponse{Items: items, Total: total}, nil
}

func toOtherIncomeResponse(i *entity.OtherIncome) *dto.OtherIncomeResponse {
	if i == nil {
		return nil
	}
	return &dto.OtherIncomeResponse{
		ID:          i.ID,
		LocationID:  i.LocationID,
		Description: i.Description,
		Category:    i.Category,
		Amount:      i.Amount,
		Date:        i.Timestamp,
	}
}
