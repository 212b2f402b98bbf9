package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflicto         = errors.New("conflicto de concurrencia, reintentar")
	ErrStockInsuficiente = errors.New("stock insuficiente")
	ErrLoteNoDisponible  = errors.New("lote no disponible para salida")
	ErrTipoMovimiento    = errors.New("tipo de movimiento desconocido")
)

// StockInsuficienteError detalla el faltante de una salida rechazada.
// Satisface errors.Is(err, ErrStockInsuficiente) para el mapeo HTTP.
type StockInsuficienteError struct {
	ProductoID string
	Solicitado int
	Disponible int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente: solicitado %d, disponible %d (faltan %d)",
		e.Solicitado, e.Disponible, e.Faltante())
}

// Faltante devuelve la cantidad que no pudo cubrirse.
func (e *StockInsuficienteError) Faltante() int {
	return e.Solicitado - e.Disponible
}

func (e *StockInsuficienteError) Is(target error) bool {
	return target == ErrStockInsuficiente
}
