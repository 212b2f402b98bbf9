package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

var _ repository.LoteRepository = (*LoteRepo)(nil)

const loteColumns = `id, producto_id, numero_lote, fecha_ingreso, fecha_fabricacion, fecha_vencimiento, cantidad_inicial, cantidad_disponible, costo_unitario, ubicacion, estado, created_at, updated_at`

// Orden FEFO estable: vencimiento ascendente con NULLS LAST (un lote sin
// vencimiento nunca vence), desempate por fecha de ingreso y por id. El mismo
// orden sirve para adquirir los locks de fila de forma determinista.
const ordenFEFO = `ORDER BY fecha_vencimiento ASC NULLS LAST, fecha_ingreso ASC, id ASC`

// LoteRepo implementación del puerto LoteRepository sobre PostgreSQL (usable con pool o tx).
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

// Create persiste un lote nuevo. numero_lote es único por producto.
func (r *LoteRepo) Create(l *entity.Lote) error {
	query := `
		INSERT INTO lotes (` + loteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.ProductoID, l.NumeroLote, l.FechaIngreso, l.FechaFabricacion, l.FechaVencimiento,
		l.CantidadInicial, l.CantidadDisponible, l.CostoUnitario, l.Ubicacion, l.Estado,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LoteRepo) GetByID(id string) (*entity.Lote, error) {
	return r.get(`SELECT `+loteColumns+` FROM lotes WHERE id = $1`, id)
}

// GetForUpdate obtiene el lote y bloquea su fila (SELECT FOR UPDATE).
func (r *LoteRepo) GetForUpdate(id string) (*entity.Lote, error) {
	return r.get(`SELECT `+loteColumns+` FROM lotes WHERE id = $1 FOR UPDATE`, id)
}

// GetByProductoYNumero busca un lote por producto y número de lote.
func (r *LoteRepo) GetByProductoYNumero(productoID, numeroLote string) (*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes WHERE producto_id = $1 AND numero_lote = $2`
	var l entity.Lote
	err := r.q.QueryRow(context.Background(), query, productoID, numeroLote).Scan(scanLoteDest(&l)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote por numero: %w", err)
	}
	return &l, nil
}

func (r *LoteRepo) get(query string, arg any) (*entity.Lote, error) {
	var l entity.Lote
	err := r.q.QueryRow(context.Background(), query, arg).Scan(scanLoteDest(&l)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}

// ListByProductoForUpdate bloquea y devuelve todos los lotes del producto en
// orden FEFO, para la decisión de asignación dentro de la transacción.
func (r *LoteRepo) ListByProductoForUpdate(productoID string) ([]*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes WHERE producto_id = $1 ` + ordenFEFO + ` FOR UPDATE`
	return r.list(query, productoID)
}

// ListByProducto lista lotes con filtros de estado y vencimiento.
func (r *LoteRepo) ListByProducto(productoID string, f repository.LoteFilter, asOf time.Time) ([]*entity.Lote, error) {
	query := `SELECT ` + loteColumns + ` FROM lotes WHERE producto_id = $1`
	args := []any{productoID}
	pos := 2
	if f.Estado != "" {
		query += fmt.Sprintf(" AND estado = $%d", pos)
		args = append(args, f.Estado)
		pos++
	}
	if f.Vencidos {
		query += fmt.Sprintf(" AND fecha_vencimiento IS NOT NULL AND fecha_vencimiento < $%d", pos)
		args = append(args, asOf)
		pos++
	} else if f.VenceEnDias != nil {
		limite := asOf.AddDate(0, 0, *f.VenceEnDias)
		query += fmt.Sprintf(" AND fecha_vencimiento IS NOT NULL AND fecha_vencimiento >= $%d AND fecha_vencimiento <= $%d", pos, pos+1)
		args = append(args, asOf, limite)
		pos += 2
	}
	query += " " + ordenFEFO
	return r.list(query, args...)
}

// ListConVencimiento devuelve los lotes con fecha de vencimiento definida que
// aún interesan al barrido: con cantidad restante o en estado no terminal.
func (r *LoteRepo) ListConVencimiento() ([]*entity.Lote, error) {
	query := `
		SELECT ` + loteColumns + ` FROM lotes
		WHERE fecha_vencimiento IS NOT NULL
		  AND (cantidad_disponible > 0 OR estado NOT IN ($1, $2))
		` + ordenFEFO
	return r.list(query, entity.LoteVencido, entity.LoteAgotado)
}

func (r *LoteRepo) list(query string, args ...any) ([]*entity.Lote, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lote
	for rows.Next() {
		var l entity.Lote
		if err := rows.Scan(scanLoteDest(&l)...); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// UpdateCantidadYEstado persiste la mutación de stock del lote.
func (r *LoteRepo) UpdateCantidadYEstado(l *entity.Lote) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE lotes SET cantidad_disponible = $2, estado = $3, updated_at = $4 WHERE id = $1`,
		l.ID, l.CantidadDisponible, l.Estado, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lote: %w", err)
	}
	return nil
}

// UpdateEstado cambia solo el estado del lote (barrido de vencimientos).
func (r *LoteRepo) UpdateEstado(loteID, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE lotes SET estado = $2, updated_at = now() WHERE id = $1`,
		loteID, estado,
	)
	if err != nil {
		return fmt.Errorf("update estado lote: %w", err)
	}
	return nil
}

func scanLoteDest(l *entity.Lote) []any {
	return []any{
		&l.ID, &l.ProductoID, &l.NumeroLote, &l.FechaIngreso, &l.FechaFabricacion,
		&l.FechaVencimiento, &l.CantidadInicial, &l.CantidadDisponible, &l.CostoUnitario,
		&l.Ubicacion, &l.Estado, &l.CreatedAt, &l.UpdatedAt,
	}
}
