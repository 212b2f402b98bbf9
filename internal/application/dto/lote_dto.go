package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoteResponse proyección de lectura de un lote. Estado y días para vencer se
// recalculan a la fecha de la consulta.
type LoteResponse struct {
	ID                 string          `json:"id"`
	ProductoID         string          `json:"producto_id"`
	NumeroLote         string          `json:"numero_lote"`
	FechaIngreso       time.Time       `json:"fecha_ingreso"`
	FechaFabricacion   *time.Time      `json:"fecha_fabricacion,omitempty"`
	FechaVencimiento   *time.Time      `json:"fecha_vencimiento,omitempty"`
	CantidadInicial    int             `json:"cantidad_inicial"`
	CantidadDisponible int             `json:"cantidad_disponible"`
	CostoUnitario      decimal.Decimal `json:"costo_unitario"`
	Ubicacion          string          `json:"ubicacion,omitempty"`
	Estado             string          `json:"estado"`
	DiasParaVencer     *int            `json:"dias_para_vencer,omitempty"`
}

// ListarLotesRequest filtros para GET /api/productos/:id/lotes.
type ListarLotesRequest struct {
	Estado      string `query:"estado"`
	VenceEnDias *int   `query:"vence_en_dias"`
	Vencidos    bool   `query:"vencidos"`
}

// LoteListResponse listado de lotes de un producto.
type LoteListResponse struct {
	Items []LoteResponse `json:"items"`
}
