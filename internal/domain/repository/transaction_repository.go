package repository

import (
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
)

// TransactionRepository puerto de persistencia para ventas completadas.
// Las transacciones solo se insertan; nunca se actualizan ni eliminan.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	// ListByLocation devuelve las ventas de una sede cuyo EndTime cae en el rango.
	ListByLocation(locationID string, r finance.DateRange) ([]*entity.Transaction, error)
	// ListByBarber devuelve las ventas atendidas por un barbero en el rango.
	ListByBarber(locationID, barberID string, r finance.DateRange) ([]*entity.Transaction, error)
}
