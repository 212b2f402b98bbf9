package dto

import "time"

// AlertaResponse proyección de lectura de una alerta.
type AlertaResponse struct {
	ID         string     `json:"id"`
	ProductoID string     `json:"producto_id"`
	LoteID     *string    `json:"lote_id,omitempty"`
	Tipo       string     `json:"tipo"`
	Mensaje    string     `json:"mensaje"`
	Prioridad  string     `json:"prioridad"`
	Leida      bool       `json:"leida"`
	FechaLeida *time.Time `json:"fecha_leida,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AlertaListResponse listado de alertas no leídas.
type AlertaListResponse struct {
	Items []AlertaResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// BarridoResponse resumen de una pasada del barrido de vencimientos.
type BarridoResponse struct {
	LotesRevisados  int `json:"lotes_revisados"`
	AlertasCreadas  int `json:"alertas_creadas"`
	LotesVencidos   int `json:"lotes_vencidos"`
	ErroresOmitidos int `json:"errores_omitidos"`
}
