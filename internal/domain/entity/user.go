package entity

import "time"

// Roles de usuarios de la aplicación (no confundir con roles del personal).
const (
	UserRoleAdmin        = "admin"
	UserRoleReceptionist = "recepcionista"
)

// User un usuario con acceso a la aplicación, asociado a una sede.
type User struct {
	ID           string
	LocationID   string
	Email        string
	PasswordHash string
	Name         string
	Role         string // "admin" | "recepcionista"
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
