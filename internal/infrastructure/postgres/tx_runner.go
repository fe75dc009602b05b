package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nordico/barber-api/internal/application/pos"
)

var _ pos.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// WithinTransaction inicia una transacción, ejecuta fn con repos atados a la tx
// y hace Commit o Rollback. Se usa al cobrar un ticket: venta, descuento de
// stock y borrado del ticket son atómicos.
func (r *TxRunner) WithinTransaction(ctx context.Context, fn func(repos pos.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := pos.TxRepos{
		Transactions: NewTransactionRepository(tx),
		Products:     NewProductRepository(tx),
		Tickets:      NewTicketRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
