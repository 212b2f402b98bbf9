package alerta

import (
	"context"

	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

// TxRunner misma firma que el puerto del motor de inventario: el barrido marca
// lotes vencidos y ajusta la caché de stock dentro de transacciones cortas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		loteRepo repository.LoteRepository,
		movRepo repository.MovimientoRepository,
		alertaRepo repository.AlertaRepository,
	) error) error
}
