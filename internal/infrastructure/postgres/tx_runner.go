package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/alerta"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/inventory"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and alerta.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ alerta.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Fallos de serialización o deadlock se traducen a
// domain.ErrConflicto para que el caller los reporte como reintentables.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productoRepo repository.ProductoRepository,
	loteRepo repository.LoteRepository,
	movRepo repository.MovimientoRepository,
	alertaRepo repository.AlertaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productoRepo := NewProductoRepository(tx)
	loteRepo := NewLoteRepository(tx)
	movRepo := NewMovimientoRepository(tx)
	alertaRepo := NewAlertaRepository(tx)

	if err := fn(productoRepo, loteRepo, movRepo, alertaRepo); err != nil {
		if isConcurrencyFailure(err) {
			return domain.ErrConflicto
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isConcurrencyFailure(err) {
			return domain.ErrConflicto
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
