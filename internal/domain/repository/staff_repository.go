package repository

import "github.com/nordico/barber-api/internal/domain/entity"

// StaffRepository puerto de persistencia para el personal.
type StaffRepository interface {
	Create(s *entity.Staff) error
	GetByID(id string) (*entity.Staff, error)
	Update(s *entity.Staff) error
	Delete(id string) error
	ListByLocation(locationID string) ([]*entity.Staff, error)
	// ListBarbersByLocation devuelve solo roles barber y head_barber.
	ListBarbersByLocation(locationID string) ([]*entity.Staff, error)
}
