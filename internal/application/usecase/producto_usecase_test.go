package usecase_test

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xavis19/NuclearVET-sub001/internal/application/dto"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/usecase"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
)

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: map[string]*entity.Producto{}}
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
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

func (r *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) { return r.GetByID(id) }

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

func TestProductoCreate(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	out, err := uc.Create(dto.CreateProductoRequest{
		Codigo:      "MELOX-20",
		Nombre:      "Meloxicam 20mg/ml",
		StockMinimo: 3,
		PrecioVenta: decimal.NewFromFloat(45.90),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "MELOX-20", out.Codigo)
	assert.Equal(t, 0, out.StockActual, "un producto nuevo arranca sin stock")
}

func TestProductoCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	_, err := uc.Create(dto.CreateProductoRequest{Nombre: "sin código"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductoRequest{Codigo: "X-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductoRequest{Codigo: "X-1", Nombre: "x", StockMinimo: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductoCreate_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	_, err := uc.Create(dto.CreateProductoRequest{Codigo: "DUP-1", Nombre: "uno"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductoRequest{Codigo: "DUP-1", Nombre: "dos"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductoUpdate(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := usecase.NewProductoUseCase(repo)

	creado, err := uc.Create(dto.CreateProductoRequest{Codigo: "X-1", Nombre: "original", StockMinimo: 2})
	require.NoError(t, err)

	nombre := "renombrado"
	minimo := 8
	out, err := uc.Update(creado.ID, dto.UpdateProductoRequest{Nombre: &nombre, StockMinimo: &minimo})
	require.NoError(t, err)
	assert.Equal(t, "renombrado", out.Nombre)
	assert.Equal(t, 8, out.StockMinimo)
	assert.Equal(t, "X-1", out.Codigo, "el código no cambia en update")

	negativo := -2
	_, err = uc.Update(creado.ID, dto.UpdateProductoRequest{StockMinimo: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err = uc.Update("no-existe", dto.UpdateProductoRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Nil(t, out, "producto inexistente devuelve nil sin error")
}

func TestProductoGetByIDYList(t *testing.T) {
	uc := usecase.NewProductoUseCase(newFakeProductoRepo())

	_, err := uc.Create(dto.CreateProductoRequest{Codigo: "B-1", Nombre: "beta"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductoRequest{Codigo: "A-1", Nombre: "alfa"})
	require.NoError(t, err)

	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)

	list, err := uc.List(20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "alfa", list.Items[0].Nombre, "el listado sale ordenado por nombre")
}
