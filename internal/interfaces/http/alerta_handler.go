package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/alerta"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/dto"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

// AlertaHandler maneja las alertas de inventario (protegido).
type AlertaHandler struct {
	uc  *alerta.UseCase
	gen *alerta.Generador
}

// NewAlertaHandler construye el handler.
func NewAlertaHandler(uc *alerta.UseCase, gen *alerta.Generador) *AlertaHandler {
	return &AlertaHandler{uc: uc, gen: gen}
}

// ListNoLeidas godoc
// @Summary      Listar alertas no leídas
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        producto_id  query  string  false  "Filtrar por producto"
// @Param        prioridad    query  string  false  "BAJA | MEDIA | ALTA"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.AlertaListResponse
// @Router       /api/alertas [get]
func (h *AlertaHandler) ListNoLeidas(c *fiber.Ctx) error {
	f := repository.AlertaFilter{
		ProductoID: c.Query("producto_id"),
		Prioridad:  c.Query("prioridad"),
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListarNoLeidas(f, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarcarLeida godoc
// @Summary      Marcar una alerta como leída
// @Description  Idempotente: marcar una alerta ya leída devuelve 200 sin cambios.
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.AlertaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alertas/{id}/leida [post]
func (h *AlertaHandler) MarcarLeida(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.MarcarLeida(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// EjecutarBarrido godoc
// @Summary      Ejecutar el barrido de vencimientos bajo demanda
// @Description  Recorre los lotes con fecha de vencimiento, marca los vencidos,
//
//	descuenta su stock y genera las alertas pendientes. Es la misma
//	pasada que corre el planificador periódico.
//
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BarridoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/alertas/barrido [post]
func (h *AlertaHandler) EjecutarBarrido(c *fiber.Ctx) error {
	out, err := h.gen.EjecutarBarrido(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
