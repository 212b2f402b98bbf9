package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/dto"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/inventory"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
)

// InventarioHandler maneja entradas, salidas y el historial de movimientos (protegido).
type InventarioHandler struct {
	uc        *inventory.RegistrarMovimientoUseCase
	consultas *inventory.ConsultasUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventory.RegistrarMovimientoUseCase, consultas *inventory.ConsultasUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc, consultas: consultas}
}

// RegistrarEntrada godoc
// @Summary      Registrar entrada de inventario
// @Description  Suma unidades a un lote existente o crea un lote nuevo en la misma operación.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarEntradaRequest  true  "producto_id, lote_id o nuevo_lote, tipo, cantidad"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/entradas [post]
func (h *InventarioHandler) RegistrarEntrada(c *fiber.Ctx) error {
	usuarioID := GetUserID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegistrarEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarEntrada(c.Context(), usuarioID, in)
	if err != nil {
		return movimientoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarSalida godoc
// @Summary      Registrar salida de inventario
// @Description  Descuenta unidades de un lote explícito o por asignación FEFO.
//
//	Una salida FEFO puede dividirse entre varios lotes; se devuelve
//	un movimiento por cada lote afectado.
//
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarSalidaRequest  true  "producto_id, tipo, cantidad, lote_id opcional"
// @Success      201   {object}  dto.MovimientoListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/salidas [post]
func (h *InventarioHandler) RegistrarSalida(c *fiber.Ctx) error {
	usuarioID := GetUserID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegistrarSalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarSalida(c.Context(), usuarioID, in)
	if err != nil {
		return movimientoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarMovimientos godoc
// @Summary      Historial de movimientos
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        producto_id  query  string  false  "Filtrar por producto"
// @Param        tipo         query  string  false  "Filtrar por tipo de movimiento"
// @Param        desde        query  string  false  "Fecha mínima (RFC 3339)"
// @Param        hasta        query  string  false  "Fecha máxima (RFC 3339)"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovimientoListResponse
// @Router       /api/inventario/movimientos [get]
func (h *InventarioHandler) ListarMovimientos(c *fiber.Ctx) error {
	var in dto.ListarMovimientosRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.consultas.ListarMovimientos(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// movimientoError mapea errores de dominio de entradas y salidas a HTTP.
func movimientoError(c *fiber.Ctx, err error) error {
	var stockErr *domain.StockInsuficienteError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("stock insuficiente: solicitado %d, disponible %d (faltan %d)", stockErr.Solicitado, stockErr.Disponible, stockErr.Faltante()),
		})
	}
	switch {
	case errors.Is(err, domain.ErrTipoMovimiento):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de movimiento inválido para esta operación"})
	case errors.Is(err, domain.ErrLoteNoDisponible):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el lote no admite esta operación"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o lote no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el número de lote ya existe para este producto"})
	case errors.Is(err, domain.ErrConflicto):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto de concurrencia, reintente la operación"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
