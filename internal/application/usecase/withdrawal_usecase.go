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

// WithdrawalUseCase retiros de efectivo de la caja de una sede.
type WithdrawalUseCase struct {
	repo repository.WithdrawalRepository
}

// NewWithdrawalUseCase construye el caso de uso.
func NewWithdrawalUseCase(repo repository.WithdrawalRepository) *WithdrawalUseCase {
	return &WithdrawalUseCase{repo: repo}
}

// Create registra un retiro. Queda asociado al usuario que lo autoriza.
func (uc *WithdrawalUseCase) Create(in dto.CreateWithdrawalRequest, authorizedBy string) (*dto.WithdrawalResponse, error) {
	if !in.Amount.IsPositive() || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	w := &entity.Withdrawal{
		ID:           uuid.New().String(),
		LocationID:   in.LocationID,
		Amount:       in.Amount,
		Reason:       in.Reason,
		Timestamp:    time.Now(),
		AuthorizedBy: authorizedBy,
	}
	if err := uc.repo.Create(w); err != nil {
		return nil, err
	}
	return toWithdrawalResponse(w), nil
}

// ListByLocation lista los retiros de una sede en el rango, con su total.
func (uc *WithdrawalUseCase) ListByLocation(locationID string, r finance.DateRange) (*dto.WithdrawalListResponse, error) {
	list, err := uc.repo.ListByLocation(locationID, r)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WithdrawalResponse, 0, len(list))
	total := decimal.Zero
	for _, w := range list {
		items = append(items, *toWithdrawalResponse(w))
		total = total.Add(w.Amount)
	}
	return &dto.WithdrawalListResponse{Items: items, Total: total}, nil
}

func toWithdrawalResponse(w *entity.Withdrawal) *dto.WithdrawalResponse {
	if w == nil {
		return nil
	}
	return &dto.WithdrawalResponse{
		ID:         w.ID,
		LocationID: w.LocationID,
		Amount:     w.Amount,
		Reason:     w.Reason,
		Date:       w.Timestamp,
	}
}
