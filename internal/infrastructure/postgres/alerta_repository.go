package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

var _ repository.AlertaRepository = (*AlertaRepo)(nil)

const alertaColumns = `id, producto_id, lote_id, tipo, mensaje, prioridad, leida, fecha_leida, created_at`

// AlertaRepo implementación del puerto AlertaRepository sobre PostgreSQL.
type AlertaRepo struct {
	q Querier
}

// NewAlertaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertaRepository(q Querier) *AlertaRepo {
	return &AlertaRepo{q: q}
}

// Create inserta una alerta nueva.
func (r *AlertaRepo) Create(a *entity.AlertaInventario) error {
	query := `
		INSERT INTO alertas_inventario (` + alertaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ProductoID, a.LoteID, a.Tipo, a.Mensaje, a.Prioridad,
		a.Leida, a.FechaLeida, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alerta: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID.
func (r *AlertaRepo) GetByID(id string) (*entity.AlertaInventario, error) {
	query := `SELECT ` + alertaColumns + ` FROM alertas_inventario WHERE id = $1`
	var a entity.AlertaInventario
	err := r.q.QueryRow(context.Background(), query, id).Scan(scanAlertaDest(&a)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alerta: %w", err)
	}
	return &a, nil
}

// ExisteNoLeida consulta el invariante de deduplicación: a lo sumo una alerta
// sin leer por combinación (producto, lote, tipo). lote_id NULL se compara con
// IS NOT DISTINCT FROM para que las alertas de producto también dedupliquen.
func (r *AlertaRepo) ExisteNoLeida(productoID string, loteID *string, tipo string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM alertas_inventario
			WHERE producto_id = $1 AND lote_id IS NOT DISTINCT FROM $2 AND tipo = $3 AND NOT leida
		)`
	var existe bool
	err := r.q.QueryRow(context.Background(), query, productoID, loteID, tipo).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe alerta no leida: %w", err)
	}
	return existe, nil
}

// ListNoLeidas devuelve las alertas pendientes, más urgentes primero.
func (r *AlertaRepo) ListNoLeidas(f repository.AlertaFilter, limit, offset int) ([]*entity.AlertaInventario, error) {
	query := `SELECT ` + alertaColumns + ` FROM alertas_inventario WHERE NOT leida`
	var args []any
	pos := 1
	if f.ProductoID != "" {
		query += fmt.Sprintf(" AND producto_id = $%d", pos)
		args = append(args, f.ProductoID)
		pos++
	}
	if f.Prioridad != "" {
		query += fmt.Sprintf(" AND prioridad = $%d", pos)
		args = append(args, f.Prioridad)
		pos++
	}
	query += fmt.Sprintf(`
		ORDER BY CASE prioridad WHEN 'ALTA' THEN 0 WHEN 'MEDIA' THEN 1 ELSE 2 END, created_at DESC
		LIMIT $%d OFFSET $%d`, pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alertas: %w", err)
	}
	defer rows.Close()
	var list []*entity.AlertaInventario
	for rows.Next() {
		var a entity.AlertaInventario
		if err := rows.Scan(scanAlertaDest(&a)...); err != nil {
			return nil, fmt.Errorf("scan alerta: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// MarcarLeida persiste la marca de lectura y su fecha.
func (r *AlertaRepo) MarcarLeida(a *entity.AlertaInventario) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE alertas_inventario SET leida = $2, fecha_leida = $3 WHERE id = $1`,
		a.ID, a.Leida, a.FechaLeida,
	)
	if err != nil {
		return fmt.Errorf("marcar alerta leida: %w", err)
	}
	return nil
}

func scanAlertaDest(a *entity.AlertaInventario) []any {
	return []any{
		&a.ID, &a.ProductoID, &a.LoteID, &a.Tipo, &a.Mensaje, &a.Prioridad,
		&a.Leida, &a.FechaLeida, &a.CreatedAt,
	}
}
