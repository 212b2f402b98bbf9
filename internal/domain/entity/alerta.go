package entity

import "time"

// Tipos de alerta de inventario.
const (
	AlertaStockBajo     = "STOCK_BAJO"
	AlertaProximoVencer = "PROXIMO_VENCER"
	AlertaVencido       = "VENCIDO"
)

// Prioridades de alerta.
const (
	PrioridadBaja  = "BAJA"
	PrioridadMedia = "MEDIA"
	PrioridadAlta  = "ALTA"
)

// AlertaInventario referencia un producto y opcionalmente un lote concreto.
// Invariante: a lo sumo una alerta NO leída por (producto, lote, tipo); el
// generador consulta antes de insertar. Las alertas no se auto-resuelven,
// solo se marcan leídas.
type AlertaInventario struct {
	ID         string
	ProductoID string
	LoteID     *string
	Tipo       string
	Mensaje    string
	Prioridad  string
	Leida      bool
	FechaLeida *time.Time
	CreatedAt  time.Time
}

// MarcarLeida marca la alerta como atendida. No impide que el generador
// vuelva a crearla si la condición recurre.
func (a *AlertaInventario) MarcarLeida(momento time.Time) {
	a.Leida = true
	a.FechaLeida = &momento
}
