package inventory

import (
	"time"

	"github.com/Xavis19/NuclearVET-sub001/internal/application/dto"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

// ConsultasUseCase proyecciones de lectura del inventario: resumen de stock,
// lotes e historial de movimientos. Usa repositorios atados al pool (fuera de
// transacción); el estado de los lotes se recalcula a la fecha de consulta.
type ConsultasUseCase struct {
	productoRepo repository.ProductoRepository
	loteRepo     repository.LoteRepository
	movRepo      repository.MovimientoRepository
}

// NewConsultasUseCase construye el caso de uso de lecturas.
func NewConsultasUseCase(
	productoRepo repository.ProductoRepository,
	loteRepo repository.LoteRepository,
	movRepo repository.MovimientoRepository,
) *ConsultasUseCase {
	return &ConsultasUseCase{productoRepo: productoRepo, loteRepo: loteRepo, movRepo: movRepo}
}

// ConsultarStock devuelve el resumen de stock de un producto.
func (uc *ConsultasUseCase) ConsultarStock(productoID string) (*dto.StockResumenResponse, error) {
	p, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.StockResumenResponse{
		ProductoID:  p.ID,
		Codigo:      p.Codigo,
		Nombre:      p.Nombre,
		StockActual: p.StockActual,
		StockMinimo: p.StockMinimo,
		StockBajo:   p.StockBajo(),
	}, nil
}

// ListarLotes lista los lotes de un producto, filtrables por estado,
// vencimiento dentro de N días, o ya vencidos.
func (uc *ConsultasUseCase) ListarLotes(productoID string, in dto.ListarLotesRequest) (*dto.LoteListResponse, error) {
	p, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	ahora := time.Now()
	lotes, err := uc.loteRepo.ListByProducto(productoID, repository.LoteFilter{
		Estado:      in.Estado,
		VenceEnDias: in.VenceEnDias,
		Vencidos:    in.Vencidos,
	}, ahora)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LoteResponse, 0, len(lotes))
	for _, l := range lotes {
		l.RecalcularEstado(ahora)
		items = append(items, *toLoteResponse(l, ahora))
	}
	return &dto.LoteListResponse{Items: items}, nil
}

// ListarMovimientos consulta el libro por producto, rango de fechas y tipo.
func (uc *ConsultasUseCase) ListarMovimientos(in dto.ListarMovimientosRequest) (*dto.MovimientoListResponse, error) {
	in.DefaultPage()
	list, err := uc.movRepo.List(repository.MovimientoFilter{
		ProductoID: in.ProductoID,
		Tipo:       in.Tipo,
		Desde:      in.Desde,
		Hasta:      in.Hasta,
	}, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovimientoResponse(m))
	}
	return &dto.MovimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}
