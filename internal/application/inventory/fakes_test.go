package inventory_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

// Fakes en memoria para los casos de uso. Copian las entidades al leer para
// imitar el comportamiento de un repositorio real: mutar el puntero devuelto
// no cambia nada hasta que se llame al Update correspondiente.

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: map[string]*entity.Producto{}}
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	for _, e := range r.productos {
		if e.Codigo == p.Codigo {
			return domain.ErrDuplicate
		}
	}
	c := *p
	r.productos[p.ID] = &c
	return nil
}

func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakeProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	for _, p := range r.productos {
		if p.Codigo == codigo {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	c := *p
	r.productos[p.ID] = &c
	return nil
}

func (r *fakeProductoRepo) UpdateStockActual(id string, stock int) error {
	p, ok := r.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockActual = stock
	return nil
}

func (r *fakeProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.productos {
		c := *p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

type fakeLoteRepo struct {
	lotes map[string]*entity.Lote
}

func newFakeLoteRepo() *fakeLoteRepo {
	return &fakeLoteRepo{lotes: map[string]*entity.Lote{}}
}

func (r *fakeLoteRepo) Create(l *entity.Lote) error {
	for _, e := range r.lotes {
		if e.ProductoID == l.ProductoID && e.NumeroLote == l.NumeroLote {
			return domain.ErrDuplicate
		}
	}
	c := *l
	r.lotes[l.ID] = &c
	return nil
}

func (r *fakeLoteRepo) GetByID(id string) (*entity.Lote, error) {
	l, ok := r.lotes[id]
	if !ok {
		return nil, nil
	}
	c := *l
	return &c, nil
}

func (r *fakeLoteRepo) GetForUpdate(id string) (*entity.Lote, error) {
	return r.GetByID(id)
}

func (r *fakeLoteRepo) GetByProductoYNumero(productoID, numeroLote string) (*entity.Lote, error) {
	for _, l := range r.lotes {
		if l.ProductoID == productoID && l.NumeroLote == numeroLote {
			c := *l
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeLoteRepo) ListByProductoForUpdate(productoID string) ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, l := range r.lotes {
		if l.ProductoID == productoID {
			c := *l
			out = append(out, &c)
		}
	}
	ordenarComoFEFO(out)
	return out, nil
}

func (r *fakeLoteRepo) ListByProducto(productoID string, f repository.LoteFilter, asOf time.Time) ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, l := range r.lotes {
		if l.ProductoID != productoID {
			continue
		}
		if f.Estado != "" && l.Estado != f.Estado {
			continue
		}
		if f.Vencidos && !l.EstaVencido(asOf) {
			continue
		}
		if f.VenceEnDias != nil {
			d := l.DiasParaVencer(asOf)
			if d == nil || *d < 0 || *d > *f.VenceEnDias {
				continue
			}
		}
		c := *l
		out = append(out, &c)
	}
	ordenarComoFEFO(out)
	return out, nil
}

func (r *fakeLoteRepo) ListConVencimiento() ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, l := range r.lotes {
		if l.FechaVencimiento == nil {
			continue
		}
		if l.CantidadDisponible == 0 && (l.Estado == entity.LoteVencido || l.Estado == entity.LoteAgotado) {
			continue
		}
		c := *l
		out = append(out, &c)
	}
	ordenarComoFEFO(out)
	return out, nil
}

func (r *fakeLoteRepo) UpdateCantidadYEstado(l *entity.Lote) error {
	c := *l
	r.lotes[l.ID] = &c
	return nil
}

func (r *fakeLoteRepo) UpdateEstado(loteID, estado string) error {
	l, ok := r.lotes[loteID]
	if !ok {
		return domain.ErrNotFound
	}
	l.Estado = estado
	return nil
}

func ordenarComoFEFO(lotes []*entity.Lote) {
	sort.SliceStable(lotes, func(i, j int) bool {
		a, b := lotes[i], lotes[j]
		switch {
		case a.FechaVencimiento == nil && b.FechaVencimiento == nil:
		case a.FechaVencimiento == nil:
			return false
		case b.FechaVencimiento == nil:
			return true
		case !a.FechaVencimiento.Equal(*b.FechaVencimiento):
			return a.FechaVencimiento.Before(*b.FechaVencimiento)
		}
		if !a.FechaIngreso.Equal(b.FechaIngreso) {
			return a.FechaIngreso.Before(b.FechaIngreso)
		}
		return a.ID < b.ID
	})
}

type fakeMovimientoRepo struct {
	movimientos []*entity.MovimientoInventario
	numero      int64
}

func newFakeMovimientoRepo() *fakeMovimientoRepo {
	return &fakeMovimientoRepo{}
}

func (r *fakeMovimientoRepo) Create(m *entity.MovimientoInventario) error {
	r.numero++
	m.Numero = r.numero
	c := *m
	r.movimientos = append(r.movimientos, &c)
	return nil
}

func (r *fakeMovimientoRepo) GetByID(id string) (*entity.MovimientoInventario, error) {
	for _, m := range r.movimientos {
		if m.ID == id {
			c := *m
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeMovimientoRepo) List(f repository.MovimientoFilter, limit, offset int) ([]*entity.MovimientoInventario, error) {
	var out []*entity.MovimientoInventario
	for i := len(r.movimientos) - 1; i >= 0; i-- {
		m := r.movimientos[i]
		if f.ProductoID != "" && m.ProductoID != f.ProductoID {
			continue
		}
		if f.Tipo != "" && m.Tipo != f.Tipo {
			continue
		}
		c := *m
		out = append(out, &c)
	}
	return out, nil
}

type fakeAlertaRepo struct {
	alertas []*entity.AlertaInventario
}

func newFakeAlertaRepo() *fakeAlertaRepo {
	return &fakeAlertaRepo{}
}

func (r *fakeAlertaRepo) Create(a *entity.AlertaInventario) error {
	c := *a
	r.alertas = append(r.alertas, &c)
	return nil
}

func (r *fakeAlertaRepo) GetByID(id string) (*entity.AlertaInventario, error) {
	for _, a := range r.alertas {
		if a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeAlertaRepo) ExisteNoLeida(productoID string, loteID *string, tipo string) (bool, error) {
	for _, a := range r.alertas {
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

func (r *fakeAlertaRepo) ListNoLeidas(f repository.AlertaFilter, limit, offset int) ([]*entity.AlertaInventario, error) {
	var out []*entity.AlertaInventario
	for _, a := range r.alertas {
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

func (r *fakeAlertaRepo) MarcarLeida(upd *entity.AlertaInventario) error {
	for _, a := range r.alertas {
		if a.ID == upd.ID {
			a.Leida = upd.Leida
			a.FechaLeida = upd.FechaLeida
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTxRunner pasa los repos directamente, sin transacción real. Los fakes
// mutan en memoria, así que el "todo o nada" se verifica asegurando que los
// casos de uso no muten nada antes de decidir. El mutex serializa las
// transacciones igual que lo hace el lock de fila del producto en Postgres.
type fakeTxRunner struct {
	mu        sync.Mutex
	productos *fakeProductoRepo
	lotes     *fakeLoteRepo
	movs      *fakeMovimientoRepo
	alertas   *fakeAlertaRepo
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{
		productos: newFakeProductoRepo(),
		lotes:     newFakeLoteRepo(),
		movs:      newFakeMovimientoRepo(),
		alertas:   newFakeAlertaRepo(),
	}
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	productoRepo repository.ProductoRepository,
	loteRepo repository.LoteRepository,
	movRepo repository.MovimientoRepository,
	alertaRepo repository.AlertaRepository,
) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	return fn(tx.productos, tx.lotes, tx.movs, tx.alertas)
}
