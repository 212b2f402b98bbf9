package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
)

var ahora = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fecha(dias int) *time.Time {
	f := ahora.AddDate(0, 0, dias)
	return &f
}

func TestLote_EstaVencido(t *testing.T) {
	l := &entity.Lote{FechaVencimiento: fecha(-1)}
	assert.True(t, l.EstaVencido(ahora), "fecha de vencimiento pasada debe estar vencido")

	l = &entity.Lote{FechaVencimiento: fecha(10)}
	assert.False(t, l.EstaVencido(ahora))

	l = &entity.Lote{FechaVencimiento: nil}
	assert.False(t, l.EstaVencido(ahora), "lote sin fecha de vencimiento nunca vence")
}

func TestLote_DiasParaVencer(t *testing.T) {
	l := &entity.Lote{FechaVencimiento: fecha(10)}
	dias := l.DiasParaVencer(ahora)
	assert.NotNil(t, dias)
	assert.Equal(t, 10, *dias)

	l = &entity.Lote{FechaVencimiento: nil}
	assert.Nil(t, l.DiasParaVencer(ahora))
}

func TestLote_RecalcularEstado_Vencido(t *testing.T) {
	l := &entity.Lote{Estado: entity.LoteDisponible, CantidadDisponible: 5, FechaVencimiento: fecha(-1)}
	l.RecalcularEstado(ahora)
	assert.Equal(t, entity.LoteVencido, l.Estado)
}

func TestLote_RecalcularEstado_VencidoGanaACuarentena(t *testing.T) {
	l := &entity.Lote{Estado: entity.LoteEnCuarentena, CantidadDisponible: 5, FechaVencimiento: fecha(-1)}
	l.RecalcularEstado(ahora)
	assert.Equal(t, entity.LoteVencido, l.Estado,
		"el vencimiento prevalece sobre la cuarentena")
}

func TestLote_RecalcularEstado_Agotado(t *testing.T) {
	l := &entity.Lote{Estado: entity.LoteDisponible, CantidadDisponible: 0, FechaVencimiento: fecha(30)}
	l.RecalcularEstado(ahora)
	assert.Equal(t, entity.LoteAgotado, l.Estado)
}

func TestLote_RecalcularEstado_AgotadoVuelveADisponible(t *testing.T) {
	// Una devolución sobre un lote agotado no vencido lo reactiva.
	l := &entity.Lote{Estado: entity.LoteAgotado, CantidadDisponible: 3, FechaVencimiento: fecha(30)}
	l.RecalcularEstado(ahora)
	assert.Equal(t, entity.LoteDisponible, l.Estado)
}

func TestLote_RecalcularEstado_CuarentenaSeConserva(t *testing.T) {
	l := &entity.Lote{Estado: entity.LoteEnCuarentena, CantidadDisponible: 5, FechaVencimiento: fecha(30)}
	l.RecalcularEstado(ahora)
	assert.Equal(t, entity.LoteEnCuarentena, l.Estado,
		"la cuarentena solo se levanta manualmente")
}

func TestLote_Asignable(t *testing.T) {
	casos := []struct {
		nombre string
		lote   entity.Lote
		want   bool
	}{
		{"disponible con stock", entity.Lote{Estado: entity.LoteDisponible, CantidadDisponible: 5, FechaVencimiento: fecha(30)}, true},
		{"disponible sin vencimiento", entity.Lote{Estado: entity.LoteDisponible, CantidadDisponible: 5}, true},
		{"vencido", entity.Lote{Estado: entity.LoteDisponible, CantidadDisponible: 5, FechaVencimiento: fecha(-1)}, false},
		{"en cuarentena", entity.Lote{Estado: entity.LoteEnCuarentena, CantidadDisponible: 5, FechaVencimiento: fecha(30)}, false},
		{"agotado", entity.Lote{Estado: entity.LoteAgotado, CantidadDisponible: 0, FechaVencimiento: fecha(30)}, false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.want, c.lote.Asignable(ahora))
		})
	}
}

func TestProducto_StockBajo(t *testing.T) {
	p := &entity.Producto{StockMinimo: 5, StockActual: 5}
	assert.True(t, p.StockBajo(), "stock igual al mínimo cuenta como bajo")

	p.StockActual = 6
	assert.False(t, p.StockBajo())

	p.StockActual = 0
	assert.True(t, p.StockBajo())
}
