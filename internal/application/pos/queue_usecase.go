package pos

import (
	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/repository"
)

// QueueUseCase cola de turnos de barberos de una sede: el primero de la lista
// atiende al próximo cliente de paso y rota al final al cobrar.
type QueueUseCase struct {
	queue repository.QueueRepository
	staff repository.StaffRepository
}

// NewQueueUseCase construye el caso de uso.
func NewQueueUseCase(queue repository.QueueRepository, staff repository.StaffRepository) *QueueUseCase {
	return &QueueUseCase{queue: queue, staff: staff}
}

// Get devuelve el orden actual de la cola.
func (uc *QueueUseCase) Get(locationID string) (*dto.QueueResponse, error) {
	ids, err := uc.queue.Get(locationID)
	if err != nil {
		return nil, err
	}
	return &dto.QueueResponse{LocationID: locationID, BarberIDs: ids}, nil
}

// Set reemplaza la cola completa con el orden indicado. Valida que cada ID sea
// un barbero de la sede y que no haya repetidos.
func (uc *QueueUseCase) Set(locationID string, barberIDs []string) (*dto.QueueResponse, error) {
	barbers, err := uc.staff.ListBarbersByLocation(locationID)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(barbers))
	for _, b := range barbers {
		known[b.ID] = true
	}
	seen := make(map[string]bool, len(barberIDs))
	for _, id := range barberIDs {
		if !known[id] {
			return nil, domain.ErrInvalidInput
		}
		if seen[id] {
			return nil, domain.ErrBarberAlreadyQueued
		}
		seen[id] = true
	}
	if err := uc.queue.Save(locationID, barberIDs); err != nil {
		return nil, err
	}
	return &dto.QueueResponse{LocationID: locationID, BarberIDs: barberIDs}, nil
}

// Join agrega un barbero al final de la cola.
func (uc *QueueUseCase) Join(locationID, barberID string) (*dto.QueueResponse, error) {
	b, err := uc.staff.GetByID(barberID)
	if err != nil {
		return nil, err
	}
	if b == nil || !b.IsBarber() || b.LocationID != locationID {
		return nil, domain.ErrInvalidInput
	}
	ids, err := uc.queue.Get(locationID)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if id == barberID {
			return nil, domain.ErrBarberAlreadyQueued
		}
	}
	ids = append(ids, barberID)
	if err := uc.queue.Save(locationID, ids); err != nil {
		return nil, err
	}
	return &dto.QueueResponse{LocationID: locationID, BarberIDs: ids}, nil
}

// Leave saca a un barbero de la cola (fin de jornada, descanso).
func (uc *QueueUseCase) Leave(locationID, barberID string) (*dto.QueueResponse, error) {
	ids, err := uc.queue.Get(locationID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != barberID {
			out = append(out, id)
		}
	}
	if err := uc.queue.Save(locationID, out); err != nil {
		return nil, err
	}
	return &dto.QueueResponse{LocationID: locationID, BarberIDs: out}, nil
}

// Rotate mueve al barbero al final de la cola tras cobrar un servicio. Si no
// está en la cola no hace nada.
func (uc *QueueUseCase) Rotate(locationID, barberID string) error {
	ids, err := uc.queue.Get(locationID)
	if err != nil {
		return err
	}
	found := false
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == barberID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		return nil
	}
	out = append(out, barberID)
	return uc.queue.Save(locationID, out)
}
