package inventory

import (
	"context"

	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la decisión de asignación, los
// decrementos de lote, la actualización de stock del producto y las filas del
// libro se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		loteRepo repository.LoteRepository,
		movRepo repository.MovimientoRepository,
		alertaRepo repository.AlertaRepository,
	) error) error
}
