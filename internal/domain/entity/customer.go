package entity

import "time"

// Customer un cliente de la barbería.
type Customer struct {
	ID        string
	Name      string
	DOB       *time.Time // fecha de nacimiento, opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}
