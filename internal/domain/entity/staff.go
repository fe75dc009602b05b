package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles del personal. Se comparan de forma exacta (case-sensitive).
const (
	RoleBarber       = "barber"
	RoleHeadBarber   = "head_barber"
	RoleReceptionist = "recepcionista"
	RoleCleaning     = "limpieza"
)

// Staff un miembro del personal de una sede. Para barberos regulares el
// porcentaje de comisión se deriva del tramo semanal, no se almacena; el
// encargado (head_barber) sí lleva CommissionPercentage fijo.
type Staff struct {
	ID                   string
	LocationID           string
	Name                 string
	Role                 string
	RentAmount           decimal.Decimal // alquiler de silla (barberos)
	CommissionPercentage decimal.Decimal // solo head_barber; cero = usar default
	MonthlyPayment       decimal.Decimal // personal asalariado
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsBarber indica si el rol participa en reportes de comisión.
func (s *Staff) IsBarber() bool {
	return s.Role == RoleBarber || s.Role == RoleHeadBarber
}
