package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service un servicio del catálogo (corte, barba, zona gamer, etc.).
type Service struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Category    string // "barberia" | "nordico" | "zona gamer"
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product un producto de venta al detal. Cost se usa para calcular el margen
// en el reporte de ganancias por ítem.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Cost      decimal.Decimal
	Stock     int
	Category  string // "Cuidado Capilar", "Bebidas", "Cortesía", "Snack", ...
	CreatedAt time.Time
	UpdatedAt time.Time
}
