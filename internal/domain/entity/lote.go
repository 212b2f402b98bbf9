package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un lote.
const (
	LoteDisponible   = "DISPONIBLE"
	LoteAgotado      = "AGOTADO"
	LoteVencido      = "VENCIDO"
	LoteEnCuarentena = "EN_CUARENTENA"
)

// Lote representa un batch físico de un producto: cantidad propia, fecha de
// vencimiento y estado. Pertenece a exactamente un producto; nunca se borra,
// solo transiciona de estado.
type Lote struct {
	ID                 string
	ProductoID         string
	NumeroLote         string // único por producto
	FechaIngreso       time.Time
	FechaFabricacion   *time.Time
	FechaVencimiento   *time.Time // nil = no vence
	CantidadInicial    int        // fija en la creación, > 0
	CantidadDisponible int        // 0 <= v <= CantidadInicial
	CostoUnitario      decimal.Decimal
	Ubicacion          string
	Estado             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EstaVencido indica si el lote pasó su fecha de vencimiento a la fecha dada.
// Un lote sin fecha de vencimiento nunca vence.
func (l *Lote) EstaVencido(asOf time.Time) bool {
	return l.FechaVencimiento != nil && asOf.After(*l.FechaVencimiento)
}

// DiasParaVencer devuelve los días hasta el vencimiento (negativo si ya pasó)
// o nil si el lote no tiene fecha de vencimiento.
func (l *Lote) DiasParaVencer(asOf time.Time) *int {
	if l.FechaVencimiento == nil {
		return nil
	}
	dias := int(l.FechaVencimiento.Sub(asOf).Hours() / 24)
	return &dias
}

// RecalcularEstado aplica la máquina de estados del lote:
// vencido -> VENCIDO (terminal para asignación); cantidad 0 -> AGOTADO;
// en cuarentena se conserva hasta liberación manual; si no, DISPONIBLE.
// Una entrada sobre un lote AGOTADO no vencido lo devuelve a DISPONIBLE.
func (l *Lote) RecalcularEstado(asOf time.Time) {
	switch {
	case l.EstaVencido(asOf):
		l.Estado = LoteVencido
	case l.CantidadDisponible == 0:
		l.Estado = LoteAgotado
	case l.Estado == LoteEnCuarentena:
		// la cuarentena solo se levanta manualmente
	default:
		l.Estado = LoteDisponible
	}
}

// Asignable indica si el motor de asignación puede consumir de este lote.
func (l *Lote) Asignable(asOf time.Time) bool {
	if l.EstaVencido(asOf) {
		return false
	}
	return l.Estado == LoteDisponible && l.CantidadDisponible > 0
}
