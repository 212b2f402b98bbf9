package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
)

func TestEsEntradaEsSalida(t *testing.T) {
	assert.True(t, entity.EsEntrada(entity.MovEntradaCompra))
	assert.True(t, entity.EsEntrada(entity.MovEntradaDevolucion))
	assert.False(t, entity.EsEntrada(entity.MovSalidaVenta))
	assert.False(t, entity.EsEntrada(entity.MovAjuste))

	assert.True(t, entity.EsSalida(entity.MovSalidaVenta))
	assert.True(t, entity.EsSalida(entity.MovSalidaConsumo))
	assert.True(t, entity.EsSalida(entity.MovSalidaBaja))
	assert.True(t, entity.EsSalida(entity.MovSalidaAjuste))
	assert.False(t, entity.EsSalida(entity.MovEntradaCompra))
}

func TestTipoMovimientoValido(t *testing.T) {
	for _, tipo := range []string{
		entity.MovEntradaCompra, entity.MovEntradaDevolucion,
		entity.MovSalidaVenta, entity.MovSalidaConsumo,
		entity.MovSalidaBaja, entity.MovSalidaAjuste, entity.MovAjuste,
	} {
		assert.True(t, entity.TipoMovimientoValido(tipo), tipo)
	}
	assert.False(t, entity.TipoMovimientoValido("TRANSFERENCIA"))
	assert.False(t, entity.TipoMovimientoValido(""))
}

func TestCalcularValorTotal(t *testing.T) {
	precio := decimal.NewFromFloat(2.50)
	total := entity.CalcularValorTotal(4, &precio)
	assert.True(t, total.Equal(decimal.NewFromInt(10)), "4 * 2.50 = 10, got %s", total)

	total = entity.CalcularValorTotal(4, nil)
	assert.True(t, total.IsZero(), "sin precio el valor total es cero")
}
