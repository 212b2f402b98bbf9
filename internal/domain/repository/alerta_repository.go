package repository

import "github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"

// AlertaFilter filtros para listar alertas no leídas.
type AlertaFilter struct {
	ProductoID string
	Prioridad  string
}

// AlertaRepository define el puerto de persistencia para AlertaInventario.
type AlertaRepository interface {
	Create(alerta *entity.AlertaInventario) error
	GetByID(id string) (*entity.AlertaInventario, error)
	// ExisteNoLeida consulta el invariante de deduplicación: ¿hay ya una
	// alerta sin leer de este tipo para el par (producto, lote)?
	ExisteNoLeida(productoID string, loteID *string, tipo string) (bool, error)
	ListNoLeidas(f AlertaFilter, limit, offset int) ([]*entity.AlertaInventario, error)
	// MarcarLeida marca la alerta y estampa fecha_leida.
	MarcarLeida(alerta *entity.AlertaInventario) error
}
