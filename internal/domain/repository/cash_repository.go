package repository

import (
	"time"

	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
)

// DailyCloseRepository puerto de persistencia para cierres de caja.
type DailyCloseRepository interface {
	Create(c *entity.DailyClose) error
	GetByID(id string) (*entity.DailyClose, error)
	// GetByLocationAndDate busca el cierre de un día concreto (nil si no existe).
	GetByLocationAndDate(locationID string, date time.Time) (*entity.DailyClose, error)
	ListByLocation(locationID string, r finance.DateRange) ([]*entity.DailyClose, error)
}

// WithdrawalRepository puerto de persistencia para retiros de caja.
type WithdrawalRepository interface {
	Create(w *entity.Withdrawal) error
	ListByLocation(locationID string, r finance.DateRange) ([]*entity.Withdrawal, error)
}
