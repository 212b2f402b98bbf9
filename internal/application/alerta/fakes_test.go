package alerta_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

// Fakes en memoria compartiendo un mismo estado, para probar el generador y
// el caso de uso de alertas sin base de datos.

var errFalloSimulado = errors.New("fallo simulado")

type memState struct {
	productos map[string]*entity.Producto
	lotes     map[string]*entity.Lote
	alertas   []*entity.AlertaInventario

	// fallarLote fuerza un error al releer ese lote con lock, para probar
	// que el barrido lo omite sin abortar la pasada.
	fallarLote string

	// locks registra cada GetForUpdate en orden de llegada, para verificar
	// que el barrido adquiere los locks como el registro de movimientos.
	locks []string
}

func newMemState() *memState {
	return &memState{
		productos: map[string]*entity.Producto{},
		lotes:     map[string]*entity.Lote{},
	}
}

func (s *memState) Run(_ context.Context, fn func(
	productoRepo repository.ProductoRepository,
	loteRepo repository.LoteRepository,
	movRepo repository.MovimientoRepository,
	alertaRepo repository.AlertaRepository,
) error) error {
	return fn(memProductoRepo{s}, memLoteRepo{s}, nil, memAlertaRepo{s})
}

type memProductoRepo struct{ s *memState }

func (r memProductoRepo) Create(p *entity.Producto) error {
	c := *p
	r.s.productos[p.ID] = &c
	return nil
}

func (r memProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := r.s.productos[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r memProductoRepo) GetByCodigo(string) (*entity.Producto, error) { return nil, nil }

func (r memProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	r.s.locks = append(r.s.locks, "producto:"+id)
	return r.GetByID(id)
}

func (r memProductoRepo) Update(p *entity.Producto) error {
	c := *p
	r.s.productos[p.ID] = &c
	return nil
}

func (r memProductoRepo) UpdateStockActual(id string, stock int) error {
	p, ok := r.s.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockActual = stock
	return nil
}

func (r memProductoRepo) List(int, int) ([]*entity.Producto, error) { return nil, nil }

type memLoteRepo struct{ s *memState }

func (r memLoteRepo) Create(l *entity.Lote) error {
	c := *l
	r.s.lotes[l.ID] = &c
	return nil
}

func (r memLoteRepo) GetByID(id string) (*entity.Lote, error) {
	l, ok := r.s.lotes[id]
	if !ok {
		return nil, nil
	}
	c := *l
	return &c, nil
}

func (r memLoteRepo) GetForUpdate(id string) (*entity.Lote, error) {
	r.s.locks = append(r.s.locks, "lote:"+id)
	if r.s.fallarLote == id {
		return nil, errFalloSimulado
	}
	return r.GetByID(id)
}

func (r memLoteRepo) GetByProductoYNumero(string, string) (*entity.Lote, error) { return nil, nil }

func (r memLoteRepo) ListByProductoForUpdate(string) ([]*entity.Lote, error) { return nil, nil }

func (r memLoteRepo) ListByProducto(string, repository.LoteFilter, time.Time) ([]*entity.Lote, error) {
	return nil, nil
}

func (r memLoteRepo) ListConVencimiento() ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, l := range r.s.lotes {
		if l.FechaVencimiento == nil {
			continue
		}
		c := *l
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memLoteRepo) UpdateCantidadYEstado(l *entity.Lote) error {
	c := *l
	r.s.lotes[l.ID] = &c
	return nil
}

func (r memLoteRepo) UpdateEstado(loteID, estado string) error {
	l, ok := r.s.lotes[loteID]
	if !ok {
		return domain.ErrNotFound
	}
	l.Estado = estado
	return nil
}

type memAlertaRepo struct{ s *memState }

func (r memAlertaRepo) Create(a *entity.AlertaInventario) error {
	c := *a
	r.s.alertas = append(r.s.alertas, &c)
	return nil
}

func (r memAlertaRepo) GetByID(id string) (*entity.AlertaInventario, error) {
	for _, a := range r.s.alertas {
		if a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, nil
}

func (r memAlertaRepo) ExisteNoLeida(productoID string, loteID *string, tipo string) (bool, error) {
	for _, a := range r.s.alertas {
		if a.Leida || a.ProductoID != productoID || a.Tipo != tipo {
			continue
		}
		if (a.LoteID == nil) != (loteID == nil) {
			continue
		}
		if a.LoteID != nil && *a.LoteID != *loteID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r memAlertaRepo) ListNoLeidas(f repository.AlertaFilter, limit, offset int) ([]*entity.AlertaInventario, error) {
	var out []*entity.AlertaInventario
	for _, a := range r.s.alertas {
		if a.Leida {
			continue
		}
		if f.ProductoID != "" && a.ProductoID != f.ProductoID {
			continue
		}
		if f.Prioridad != "" && a.Prioridad != f.Prioridad {
			continue
		}
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func (r memAlertaRepo) MarcarLeida(upd *entity.AlertaInventario) error {
	for _, a := range r.s.alertas {
		if a.ID == upd.ID {
			a.Leida = upd.Leida
			a.FechaLeida = upd.FechaLeida
			return nil
		}
	}
	return domain.ErrNotFound
}
