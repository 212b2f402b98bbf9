package repository

import (
	"time"

	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
)

// LoteFilter filtros para listar lotes de un producto.
type LoteFilter struct {
	Estado      string // vacío = todos
	VenceEnDias *int   // lotes con vencimiento dentro de N días
	Vencidos    bool   // solo lotes vencidos a la fecha de consulta
}

// LoteRepository define el puerto de persistencia para Lote.
// Los lotes nunca se borran; solo cambian cantidad y estado.
type LoteRepository interface {
	Create(lote *entity.Lote) error
	GetByID(id string) (*entity.Lote, error)
	GetByProductoYNumero(productoID, numeroLote string) (*entity.Lote, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Lote, error)
	// ListByProductoForUpdate bloquea y devuelve todos los lotes del producto
	// en orden FEFO estable (vencimiento asc, nulls al final, ingreso, id),
	// para que transacciones concurrentes adquieran los locks en el mismo orden.
	ListByProductoForUpdate(productoID string) ([]*entity.Lote, error)
	ListByProducto(productoID string, f LoteFilter, asOf time.Time) ([]*entity.Lote, error)
	// UpdateCantidadYEstado persiste la mutación de stock del lote.
	UpdateCantidadYEstado(lote *entity.Lote) error
	UpdateEstado(loteID, estado string) error
	// ListConVencimiento devuelve los lotes con fecha de vencimiento definida
	// y cantidad > 0 o estado no terminal; entrada del barrido de alertas.
	ListConVencimiento() ([]*entity.Lote, error)
}
