package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/dto"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/inventory"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
)

// LoteHandler maneja las transiciones de cuarentena de lotes (protegido).
type LoteHandler struct {
	uc *inventory.RegistrarMovimientoUseCase
}

// NewLoteHandler construye el handler.
func NewLoteHandler(uc *inventory.RegistrarMovimientoUseCase) *LoteHandler {
	return &LoteHandler{uc: uc}
}

// PonerEnCuarentena godoc
// @Summary      Poner un lote en cuarentena
// @Description  El lote queda excluido de la asignación FEFO hasta su liberación.
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.LoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id}/cuarentena [post]
func (h *LoteHandler) PonerEnCuarentena(c *fiber.Ctx) error {
	return h.transicion(c, true)
}

// LiberarCuarentena godoc
// @Summary      Liberar un lote de cuarentena
// @Description  El estado resultante se recalcula: puede salir como DISPONIBLE,
//
//	AGOTADO o VENCIDO según cantidad y fecha de vencimiento.
//
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.LoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id}/liberar [post]
func (h *LoteHandler) LiberarCuarentena(c *fiber.Ctx) error {
	return h.transicion(c, false)
}

func (h *LoteHandler) transicion(c *fiber.Ctx, entrar bool) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var (
		out *dto.LoteResponse
		err error
	)
	if entrar {
		out, err = h.uc.PonerEnCuarentena(c.Context(), id)
	} else {
		out, err = h.uc.LiberarCuarentena(c.Context(), id)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrLoteNoDisponible):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el estado actual del lote no permite la transición"})
		case errors.Is(err, domain.ErrConflicto):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto de concurrencia, reintente la operación"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
