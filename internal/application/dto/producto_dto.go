package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest body para POST /api/productos.
type CreateProductoRequest struct {
	Codigo                string          `json:"codigo"`
	Nombre                string          `json:"nombre"`
	Descripcion           string          `json:"descripcion,omitempty"`
	StockMinimo           int             `json:"stock_minimo"`
	PrecioVenta           decimal.Decimal `json:"precio_venta"`
	RequiereRefrigeracion bool            `json:"requiere_refrigeracion"`
	RequiereReceta        bool            `json:"requiere_receta"`
}

// UpdateProductoRequest body para PUT /api/productos/:id (campos opcionales).
// StockActual no es editable: solo lo mueven los movimientos y el barrido.
type UpdateProductoRequest struct {
	Nombre                *string          `json:"nombre,omitempty"`
	Descripcion           *string          `json:"descripcion,omitempty"`
	StockMinimo           *int             `json:"stock_minimo,omitempty"`
	PrecioVenta           *decimal.Decimal `json:"precio_venta,omitempty"`
	RequiereRefrigeracion *bool            `json:"requiere_refrigeracion,omitempty"`
	RequiereReceta        *bool            `json:"requiere_receta,omitempty"`
}

// ProductoResponse proyección de lectura de un producto.
type ProductoResponse struct {
	ID                    string          `json:"id"`
	Codigo                string          `json:"codigo"`
	Nombre                string          `json:"nombre"`
	Descripcion           string          `json:"descripcion,omitempty"`
	StockMinimo           int             `json:"stock_minimo"`
	StockActual           int             `json:"stock_actual"`
	PrecioVenta           decimal.Decimal `json:"precio_venta"`
	RequiereRefrigeracion bool            `json:"requiere_refrigeracion"`
	RequiereReceta        bool            `json:"requiere_receta"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// ProductoListResponse listado paginado.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockResumenResponse resumen de stock para colaboradores externos.
type StockResumenResponse struct {
	ProductoID  string `json:"producto_id"`
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	StockActual int    `json:"stock_actual"`
	StockMinimo int    `json:"stock_minimo"`
	StockBajo   bool   `json:"stock_bajo"`
}
