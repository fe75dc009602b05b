package repository

import "github.com/nordico/barber-api/internal/domain/entity"

// TicketRepository puerto de persistencia para tickets activos del POS.
type TicketRepository interface {
	Create(t *entity.ActiveTicket) error
	GetByID(id string) (*entity.ActiveTicket, error)
	Update(t *entity.ActiveTicket) error
	Delete(id string) error
	ListByLocation(locationID string) ([]*entity.ActiveTicket, error)
	CountByLocation(locationID string) (int, error)
}

// QueueRepository puerto para la cola de turnos de barberos de una sede.
// La cola es una lista ordenada de IDs de barbero.
type QueueRepository interface {
	Get(locationID string) ([]string, error)
	Save(locationID string, barberIDs []string) error
}
