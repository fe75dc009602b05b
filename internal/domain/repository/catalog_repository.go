package repository

import "github.com/nordico/barber-api/internal/domain/entity"

// ServiceRepository puerto de persistencia para el catálogo de servicios.
type ServiceRepository interface {
	Create(s *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	Update(s *entity.Service) error
	Delete(id string) error
	List() ([]*entity.Service, error)
}

// ProductRepository puerto de persistencia para productos de venta al detal.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(p *entity.Product) error
	Delete(id string) error
	List() ([]*entity.Product, error)
	// DecrementStock descuenta unidades vendidas. Devuelve
	// domain.ErrInsufficientStock si el stock quedara negativo.
	DecrementStock(id string, quantity int) error
}
