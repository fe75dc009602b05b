package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrUnknownLocationKind  = errors.New("tipo de sede no soportado")
	ErrEmptyTicket          = errors.New("el ticket no tiene items")
	ErrAlreadyClosed        = errors.New("la caja ya fue cerrada para esa fecha")
	ErrBarberAlreadyQueued  = errors.New("el barbero ya está en la cola de turnos")
)
