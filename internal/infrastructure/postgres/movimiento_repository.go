package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoColumns = `id, numero, solicitud_id, producto_id, lote_id, tipo, cantidad, precio_unitario, valor_total, stock_anterior, stock_nuevo, documento_ref, observacion, usuario_id, fecha, created_at`

// MovimientoRepo implementación del libro de movimientos sobre PostgreSQL.
// La tabla es append-only: este adaptador no expone Update ni Delete.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create inserta el movimiento. El número correlativo lo asigna la secuencia
// movimientos_numero_seq en el servidor y se devuelve en la misma sentencia,
// así nunca se reutiliza aunque la transacción termine en rollback.
func (r *MovimientoRepo) Create(m *entity.MovimientoInventario) error {
	query := `
		INSERT INTO movimientos_inventario
			(id, numero, solicitud_id, producto_id, lote_id, tipo, cantidad, precio_unitario, valor_total, stock_anterior, stock_nuevo, documento_ref, observacion, usuario_id, fecha, created_at)
		VALUES ($1, nextval('movimientos_numero_seq'), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING numero`
	err := r.q.QueryRow(context.Background(), query,
		m.ID, m.SolicitudID, m.ProductoID, m.LoteID, m.Tipo, m.Cantidad,
		m.PrecioUnitario, m.ValorTotal, m.StockAnterior, m.StockNuevo,
		m.DocumentoRef, m.Observacion, m.UsuarioID, m.Fecha, m.CreatedAt,
	).Scan(&m.Numero)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.MovimientoInventario, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_inventario WHERE id = $1`
	var m entity.MovimientoInventario
	err := r.q.QueryRow(context.Background(), query, id).Scan(scanMovimientoDest(&m)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// List devuelve el historial filtrado, del más reciente al más antiguo
// (numero descendente, que coincide con el orden de registro).
func (r *MovimientoRepo) List(f repository.MovimientoFilter, limit, offset int) ([]*entity.MovimientoInventario, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_inventario WHERE 1=1`
	var args []any
	pos := 1
	if f.ProductoID != "" {
		query += fmt.Sprintf(" AND producto_id = $%d", pos)
		args = append(args, f.ProductoID)
		pos++
	}
	if f.Tipo != "" {
		query += fmt.Sprintf(" AND tipo = $%d", pos)
		args = append(args, f.Tipo)
		pos++
	}
	if f.Desde != nil {
		query += fmt.Sprintf(" AND fecha >= $%d", pos)
		args = append(args, *f.Desde)
		pos++
	}
	if f.Hasta != nil {
		query += fmt.Sprintf(" AND fecha <= $%d", pos)
		args = append(args, *f.Hasta)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY numero DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoInventario
	for rows.Next() {
		var m entity.MovimientoInventario
		if err := rows.Scan(scanMovimientoDest(&m)...); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func scanMovimientoDest(m *entity.MovimientoInventario) []any {
	return []any{
		&m.ID, &m.Numero, &m.SolicitudID, &m.ProductoID, &m.LoteID, &m.Tipo, &m.Cantidad,
		&m.PrecioUnitario, &m.ValorTotal, &m.StockAnterior, &m.StockNuevo,
		&m.DocumentoRef, &m.Observacion, &m.UsuarioID, &m.Fecha, &m.CreatedAt,
	}
}
