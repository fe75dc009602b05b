package repository

import "github.com/nordico/barber-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(c *entity.Customer) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Customer, error)
}
