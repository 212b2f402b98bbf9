package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, codigo, nombre, descripcion, stock_minimo, stock_actual, precio_venta, requiere_refrigeracion, requiere_receta, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un producto nuevo. StockActual inicia en 0.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.StockMinimo, p.StockActual,
		p.PrecioVenta, p.RequiereRefrigeracion, p.RequiereReceta, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.get(`SELECT `+productoColumns+` FROM productos WHERE id = $1`, id)
}

// GetByCodigo obtiene un producto por su código único.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	return r.get(`SELECT `+productoColumns+` FROM productos WHERE codigo = $1`, codigo)
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE) para
// serializar las decisiones de asignación sobre el mismo producto.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.get(`SELECT `+productoColumns+` FROM productos WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductoRepo) get(query string, arg any) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.StockMinimo, &p.StockActual,
		&p.PrecioVenta, &p.RequiereRefrigeracion, &p.RequiereReceta, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update actualiza los datos de catálogo. StockActual no se toca por aquí.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, stock_minimo = $4, precio_venta = $5,
			requiere_refrigeracion = $6, requiere_receta = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.StockMinimo, p.PrecioVenta,
		p.RequiereRefrigeracion, p.RequiereReceta, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateStockActual actualiza solo la caché de stock (usada por el motor de inventario y el barrido).
func (r *ProductoRepo) UpdateStockActual(productoID string, stockActual int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = $2, updated_at = now() WHERE id = $1`,
		productoID, stockActual,
	)
	if err != nil {
		return fmt.Errorf("update stock actual: %w", err)
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.StockMinimo, &p.StockActual,
			&p.PrecioVenta, &p.RequiereRefrigeracion, &p.RequiereReceta, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
