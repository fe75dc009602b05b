// Package pos contiene los casos de uso del punto de venta: tickets activos,
// cobro y la cola de turnos de barberos.
package pos

import (
	"context"

	"github.com/nordico/barber-api/internal/domain/repository"
)

// TxRepos repositorios ligados a una misma transacción de base de datos.
type TxRepos struct {
	Transactions repository.TransactionRepository
	Products     repository.ProductRepository
	Tickets      repository.TicketRepository
}

// TxRunner puerto de salida para ejecutar una función dentro de una
// transacción. Si fn devuelve error la transacción se revierte completa; el
// cobro de un ticket (insertar venta, descontar stock, borrar ticket) es todo
// o nada.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(r TxRepos) error) error
}
