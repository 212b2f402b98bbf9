package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// NuevoLoteRequest payload para crear un lote junto con su entrada.
type NuevoLoteRequest struct {
	NumeroLote       string     `json:"numero_lote"`
	FechaFabricacion *time.Time `json:"fecha_fabricacion,omitempty"`
	FechaVencimiento *time.Time `json:"fecha_vencimiento,omitempty"`
	Ubicacion        string     `json:"ubicacion,omitempty"`
}

// RegistrarEntradaRequest body para POST /api/inventario/entradas.
// Debe indicar un lote existente (lote_id) o los datos de un lote nuevo.
type RegistrarEntradaRequest struct {
	ProductoID     string            `json:"producto_id"`
	LoteID         string            `json:"lote_id,omitempty"`
	NuevoLote      *NuevoLoteRequest `json:"nuevo_lote,omitempty"`
	Tipo           string            `json:"tipo"` // ENTRADA_COMPRA | ENTRADA_DEVOLUCION
	Cantidad       int               `json:"cantidad"`
	PrecioUnitario *decimal.Decimal  `json:"precio_unitario,omitempty"`
	DocumentoRef   string            `json:"documento_ref,omitempty"`
	Observacion    string            `json:"observacion,omitempty"`
}

// RegistrarSalidaRequest body para POST /api/inventario/salidas.
// Sin lote_id la salida se asigna por FEFO y puede dividirse entre lotes.
type RegistrarSalidaRequest struct {
	ProductoID   string `json:"producto_id"`
	LoteID       string `json:"lote_id,omitempty"`
	Tipo         string `json:"tipo"` // SALIDA_VENTA | SALIDA_CONSUMO | SALIDA_BAJA | SALIDA_AJUSTE
	Cantidad     int    `json:"cantidad"`
	DocumentoRef string `json:"documento_ref,omitempty"`
	Observacion  string `json:"observacion,omitempty"`
}

// MovimientoResponse proyección de lectura de un movimiento del libro.
type MovimientoResponse struct {
	ID             string           `json:"id"`
	Numero         int64            `json:"numero"`
	SolicitudID    string           `json:"solicitud_id"`
	ProductoID     string           `json:"producto_id"`
	LoteID         *string          `json:"lote_id,omitempty"`
	Tipo           string           `json:"tipo"`
	Cantidad       int              `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	ValorTotal     decimal.Decimal  `json:"valor_total"`
	StockAnterior  int              `json:"stock_anterior"`
	StockNuevo     int              `json:"stock_nuevo"`
	DocumentoRef   string           `json:"documento_ref,omitempty"`
	Observacion    string           `json:"observacion,omitempty"`
	UsuarioID      string           `json:"usuario_id"`
	Fecha          time.Time        `json:"fecha"`
}

// MovimientoListResponse movimientos creados por una operación o un listado.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// ListarMovimientosRequest filtros de consulta del historial.
type ListarMovimientosRequest struct {
	ProductoID string     `query:"producto_id"`
	Tipo       string     `query:"tipo"`
	Desde      *time.Time `query:"desde"`
	Hasta      *time.Time `query:"hasta"`
	PageRequest
}
