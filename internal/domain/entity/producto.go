package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un insumo o medicamento de la clínica (SKU).
// StockActual es una caché derivada: suma de CantidadDisponible de sus lotes
// no vencidos. Solo la mutan los movimientos y el barrido de vencimientos.
type Producto struct {
	ID                    string
	Codigo                string // código único
	Nombre                string // único
	Descripcion           string
	StockMinimo           int // umbral de reorden, >= 0
	StockActual           int // derivado, nunca negativo
	PrecioVenta           decimal.Decimal
	RequiereRefrigeracion bool
	RequiereReceta        bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// StockBajo indica si el producto está en o por debajo de su umbral de reorden.
func (p *Producto) StockBajo() bool {
	return p.StockActual <= p.StockMinimo
}
