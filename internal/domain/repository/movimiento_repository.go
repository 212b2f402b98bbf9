package repository

import (
	"time"

	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
)

// MovimientoFilter filtros para el historial de movimientos.
type MovimientoFilter struct {
	ProductoID string
	Tipo       string
	Desde      *time.Time
	Hasta      *time.Time
}

// MovimientoRepository define el puerto del libro de movimientos (append-only).
// Los movimientos son inmutables: no hay Update ni Delete.
type MovimientoRepository interface {
	// Create inserta el movimiento y asigna Numero desde la secuencia.
	Create(mov *entity.MovimientoInventario) error
	GetByID(id string) (*entity.MovimientoInventario, error)
	List(f MovimientoFilter, limit, offset int) ([]*entity.MovimientoInventario, error)
}
