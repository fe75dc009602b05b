package repository

import "github.com/nordico/barber-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios de la aplicación.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}

// LocationRepository puerto de lectura para las sedes (datos sembrados).
type LocationRepository interface {
	GetByID(id string) (*entity.Location, error)
	GetByName(name string) (*entity.Location, error)
	List() ([]*entity.Location, error)
}
