package alerta

import (
	"time"

	"github.com/Xavis19/NuclearVET-sub001/internal/application/dto"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

// UseCase lecturas y acuse de recibo de alertas.
type UseCase struct {
	alertaRepo repository.AlertaRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(alertaRepo repository.AlertaRepository) *UseCase {
	return &UseCase{alertaRepo: alertaRepo}
}

// ListarNoLeidas lista alertas pendientes, filtrables por producto y prioridad.
func (uc *UseCase) ListarNoLeidas(f repository.AlertaFilter, limit, offset int) (*dto.AlertaListResponse, error) {
	list, err := uc.alertaRepo.ListNoLeidas(f, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlertaResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAlertaResponse(a))
	}
	return &dto.AlertaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// MarcarLeida marca una alerta como atendida y estampa fecha_leida.
// Si la condición recurre el generador creará una alerta nueva.
func (uc *UseCase) MarcarLeida(id string) (*dto.AlertaResponse, error) {
	a, err := uc.alertaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if !a.Leida {
		a.MarcarLeida(time.Now())
		if err := uc.alertaRepo.MarcarLeida(a); err != nil {
			return nil, err
		}
	}
	return toAlertaResponse(a), nil
}

func toAlertaResponse(a *entity.AlertaInventario) *dto.AlertaResponse {
	if a == nil {
		return nil
	}
	return &dto.AlertaResponse{
		ID:         a.ID,
		ProductoID: a.ProductoID,
		LoteID:     a.LoteID,
		Tipo:       a.Tipo,
		Mensaje:    a.Mensaje,
		Prioridad:  a.Prioridad,
		Leida:      a.Leida,
		FechaLeida: a.FechaLeida,
		CreatedAt:  a.CreatedAt,
	}
}
