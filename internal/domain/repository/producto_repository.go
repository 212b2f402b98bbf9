package repository

import "github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	// UpdateStockActual actualiza solo la caché de stock (usada por el motor).
	UpdateStockActual(productoID string, stockActual int) error
	List(limit, offset int) ([]*entity.Producto, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) durante
	// la decisión de asignación y la escritura del movimiento.
	GetForUpdate(id string) (*entity.Producto, error)
}
