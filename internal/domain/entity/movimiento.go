package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovEntradaCompra     = "ENTRADA_COMPRA"
	MovEntradaDevolucion = "ENTRADA_DEVOLUCION"
	MovSalidaVenta       = "SALIDA_VENTA"
	MovSalidaConsumo     = "SALIDA_CONSUMO"
	MovSalidaBaja        = "SALIDA_BAJA"
	MovSalidaAjuste      = "SALIDA_AJUSTE"
	MovAjuste            = "AJUSTE" // corrección manual en cualquier dirección
)

// MovimientoInventario es un evento inmutable del libro de inventario.
// Las correcciones se registran como nuevos movimientos AJUSTE, nunca como
// ediciones; Numero es secuencial y no se reutiliza.
type MovimientoInventario struct {
	ID             string
	Numero         int64  // asignado por secuencia al escribir
	SolicitudID    string // agrupa los movimientos de una asignación dividida
	ProductoID     string
	LoteID         *string // nil solo en ajustes agregados; salidas siempre con lote
	Tipo           string
	Cantidad       int              // > 0 siempre; la dirección la da el tipo
	PrecioUnitario *decimal.Decimal // >= 0 si presente
	ValorTotal     decimal.Decimal  // Cantidad * PrecioUnitario (0 sin precio)
	StockAnterior  int              // snapshot a nivel producto
	StockNuevo     int
	DocumentoRef   string
	Observacion    string
	UsuarioID      string
	Fecha          time.Time
	CreatedAt      time.Time
}

var tiposEntrada = map[string]bool{
	MovEntradaCompra:     true,
	MovEntradaDevolucion: true,
}

var tiposSalida = map[string]bool{
	MovSalidaVenta:   true,
	MovSalidaConsumo: true,
	MovSalidaBaja:    true,
	MovSalidaAjuste:  true,
}

// EsEntrada indica si el tipo incrementa stock.
func EsEntrada(tipo string) bool { return tiposEntrada[tipo] }

// EsSalida indica si el tipo decrementa stock.
func EsSalida(tipo string) bool { return tiposSalida[tipo] }

// TipoMovimientoValido acepta entradas, salidas y el ajuste genérico.
func TipoMovimientoValido(tipo string) bool {
	return tiposEntrada[tipo] || tiposSalida[tipo] || tipo == MovAjuste
}

// CalcularValorTotal devuelve Cantidad * PrecioUnitario, o cero sin precio.
func CalcularValorTotal(cantidad int, precioUnitario *decimal.Decimal) decimal.Decimal {
	if precioUnitario == nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(cantidad)).Mul(*precioUnitario)
}
