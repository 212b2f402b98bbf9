package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/alerta"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/dto"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
	domaininv "github.com/Xavis19/NuclearVET-sub001/internal/domain/inventory"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
)

// RegistrarMovimientoUseCase registra entradas y salidas de inventario de
// forma transaccional: bloqueo de fila sobre producto y lotes (SELECT FOR
// UPDATE), mutación de stock y fila(s) del libro en un solo Commit/Rollback.
type RegistrarMovimientoUseCase struct {
	txRunner TxRunner
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(txRunner TxRunner) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{txRunner: txRunner}
}

// RegistrarEntrada registra una entrada (compra, devolución o ajuste positivo)
// sobre un lote existente o uno creado en la misma operación. Incrementa
// CantidadDisponible del lote y StockActual del producto, con snapshot
// stock_anterior/stock_nuevo, y revisa la alerta de stock bajo, todo dentro
// de una transacción.
func (uc *RegistrarMovimientoUseCase) RegistrarEntrada(ctx context.Context, usuarioID string, in dto.RegistrarEntradaRequest) (*dto.MovimientoResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.EsEntrada(in.Tipo) && in.Tipo != entity.MovAjuste {
		return nil, domain.ErrTipoMovimiento
	}
	if in.PrecioUnitario != nil && in.PrecioUnitario.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if (in.LoteID == "" && in.NuevoLote == nil) || (in.LoteID != "" && in.NuevoLote != nil) {
		return nil, domain.ErrInvalidInput
	}
	if in.NuevoLote != nil && in.NuevoLote.NumeroLote == "" {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.MovimientoResponse
	err := uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		loteRepo repository.LoteRepository,
		movRepo repository.MovimientoRepository,
		alertaRepo repository.AlertaRepository,
	) error {
		ahora := time.Now()

		producto, err := productoRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}

		var lote *entity.Lote
		if in.LoteID != "" {
			lote, err = loteRepo.GetForUpdate(in.LoteID)
			if err != nil {
				return err
			}
			if lote == nil {
				return domain.ErrNotFound
			}
			if lote.ProductoID != producto.ID {
				return domain.ErrInvalidInput
			}
			lote.RecalcularEstado(ahora)
			if lote.Estado == entity.LoteVencido {
				// entrada sobre lote vencido no reactiva el lote
				return domain.ErrLoteNoDisponible
			}
			if lote.CantidadDisponible+in.Cantidad > lote.CantidadInicial {
				return domain.ErrInvalidInput
			}
			lote.CantidadDisponible += in.Cantidad
			lote.RecalcularEstado(ahora)
			lote.UpdatedAt = ahora
			if err := loteRepo.UpdateCantidadYEstado(lote); err != nil {
				return err
			}
		} else {
			existente, err := loteRepo.GetByProductoYNumero(producto.ID, in.NuevoLote.NumeroLote)
			if err != nil {
				return err
			}
			if existente != nil {
				return domain.ErrDuplicate
			}
			costo := decimal.Zero
			if in.PrecioUnitario != nil {
				costo = *in.PrecioUnitario
			}
			lote = &entity.Lote{
				ID:                 uuid.New().String(),
				ProductoID:         producto.ID,
				NumeroLote:         in.NuevoLote.NumeroLote,
				FechaIngreso:       ahora,
				FechaFabricacion:   in.NuevoLote.FechaFabricacion,
				FechaVencimiento:   in.NuevoLote.FechaVencimiento,
				CantidadInicial:    in.Cantidad,
				CantidadDisponible: in.Cantidad,
				CostoUnitario:      costo,
				Ubicacion:          in.NuevoLote.Ubicacion,
				Estado:             entity.LoteDisponible,
				CreatedAt:          ahora,
				UpdatedAt:          ahora,
			}
			lote.RecalcularEstado(ahora)
			if lote.Estado == entity.LoteVencido {
				// un lote que nace vencido no aporta stock
				return domain.ErrInvalidInput
			}
			if err := loteRepo.Create(lote); err != nil {
				return err
			}
		}

		stockAnterior := producto.StockActual
		producto.StockActual += in.Cantidad
		if err := productoRepo.UpdateStockActual(producto.ID, producto.StockActual); err != nil {
			return err
		}

		mov := &entity.MovimientoInventario{
			ID:             uuid.New().String(),
			SolicitudID:    uuid.New().String(),
			ProductoID:     producto.ID,
			LoteID:         &lote.ID,
			Tipo:           in.Tipo,
			Cantidad:       in.Cantidad,
			PrecioUnitario: in.PrecioUnitario,
			ValorTotal:     entity.CalcularValorTotal(in.Cantidad, in.PrecioUnitario),
			StockAnterior:  stockAnterior,
			StockNuevo:     producto.StockActual,
			DocumentoRef:   in.DocumentoRef,
			Observacion:    in.Observacion,
			UsuarioID:      usuarioID,
			Fecha:          ahora,
			CreatedAt:      ahora,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		if _, err := alerta.AsegurarStockBajo(alertaRepo, producto, ahora); err != nil {
			return err
		}

		out = toMovimientoResponse(mov)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RegistrarSalida registra una salida. Con lote_id explícito consume de ese
// lote; sin él delega en el motor FEFO, que puede dividir la petición entre
// varios lotes: un movimiento por lote consumido, todos con el mismo
// solicitud_id. Todo o nada: si la disponibilidad elegible no cubre la
// cantidad no se muta nada.
func (uc *RegistrarMovimientoUseCase) RegistrarSalida(ctx context.Context, usuarioID string, in dto.RegistrarSalidaRequest) (*dto.MovimientoListResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.EsSalida(in.Tipo) && in.Tipo != entity.MovAjuste {
		return nil, domain.ErrTipoMovimiento
	}

	var out *dto.MovimientoListResponse
	err := uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		loteRepo repository.LoteRepository,
		movRepo repository.MovimientoRepository,
		alertaRepo repository.AlertaRepository,
	) error {
		ahora := time.Now()

		producto, err := productoRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}

		var resultado *domaininv.ResultadoAsignacion
		if in.LoteID != "" {
			lote, err := loteRepo.GetForUpdate(in.LoteID)
			if err != nil {
				return err
			}
			if lote == nil {
				return domain.ErrNotFound
			}
			if lote.ProductoID != producto.ID {
				return domain.ErrInvalidInput
			}
			lote.RecalcularEstado(ahora)
			if !lote.Asignable(ahora) {
				return &domain.StockInsuficienteError{
					ProductoID: producto.ID,
					Solicitado: in.Cantidad,
					Disponible: 0,
				}
			}
			if lote.CantidadDisponible < in.Cantidad {
				return &domain.StockInsuficienteError{
					ProductoID: producto.ID,
					Solicitado: in.Cantidad,
					Disponible: lote.CantidadDisponible,
				}
			}
			resultado = &domaininv.ResultadoAsignacion{
				Asignaciones: []domaininv.AsignacionLote{{Lote: lote, Cantidad: in.Cantidad}},
				Total:        in.Cantidad,
			}
		} else {
			// Lock de todos los lotes del producto en orden FEFO estable para
			// que dos salidas concurrentes adquieran los locks igual.
			lotes, err := loteRepo.ListByProductoForUpdate(producto.ID)
			if err != nil {
				return err
			}
			for _, l := range lotes {
				l.RecalcularEstado(ahora)
			}
			resultado, err = domaininv.SeleccionarLotes(in.Cantidad, lotes, ahora)
			if err != nil {
				return err
			}
		}

		solicitudID := uuid.New().String()
		stock := producto.StockActual
		movs := make([]dto.MovimientoResponse, 0, len(resultado.Asignaciones))
		for _, asig := range resultado.Asignaciones {
			l := asig.Lote
			l.CantidadDisponible -= asig.Cantidad
			l.RecalcularEstado(ahora)
			l.UpdatedAt = ahora
			if err := loteRepo.UpdateCantidadYEstado(l); err != nil {
				return err
			}

			precio := l.CostoUnitario
			mov := &entity.MovimientoInventario{
				ID:             uuid.New().String(),
				SolicitudID:    solicitudID,
				ProductoID:     producto.ID,
				LoteID:         &l.ID,
				Tipo:           in.Tipo,
				Cantidad:       asig.Cantidad,
				PrecioUnitario: &precio,
				ValorTotal:     entity.CalcularValorTotal(asig.Cantidad, &precio),
				StockAnterior:  stock,
				StockNuevo:     stock - asig.Cantidad,
				DocumentoRef:   in.DocumentoRef,
				Observacion:    in.Observacion,
				UsuarioID:      usuarioID,
				Fecha:          ahora,
				CreatedAt:      ahora,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			stock -= asig.Cantidad
			movs = append(movs, *toMovimientoResponse(mov))
		}

		producto.StockActual = stock
		if err := productoRepo.UpdateStockActual(producto.ID, producto.StockActual); err != nil {
			return err
		}

		if _, err := alerta.AsegurarStockBajo(alertaRepo, producto, ahora); err != nil {
			return err
		}

		out = &dto.MovimientoListResponse{Items: movs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PonerEnCuarentena excluye un lote de la asignación hasta su liberación
// manual. Solo un lote DISPONIBLE puede entrar en cuarentena.
func (uc *RegistrarMovimientoUseCase) PonerEnCuarentena(ctx context.Context, loteID string) (*dto.LoteResponse, error) {
	return uc.transicionCuarentena(ctx, loteID, true)
}

// LiberarCuarentena devuelve un lote EN_CUARENTENA a su estado calculado.
func (uc *RegistrarMovimientoUseCase) LiberarCuarentena(ctx context.Context, loteID string) (*dto.LoteResponse, error) {
	return uc.transicionCuarentena(ctx, loteID, false)
}

func (uc *RegistrarMovimientoUseCase) transicionCuarentena(ctx context.Context, loteID string, entrar bool) (*dto.LoteResponse, error) {
	var out *dto.LoteResponse
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductoRepository,
		loteRepo repository.LoteRepository,
		_ repository.MovimientoRepository,
		_ repository.AlertaRepository,
	) error {
		ahora := time.Now()
		lote, err := loteRepo.GetForUpdate(loteID)
		if err != nil {
			return err
		}
		if lote == nil {
			return domain.ErrNotFound
		}
		lote.RecalcularEstado(ahora)
		if entrar {
			if lote.Estado != entity.LoteDisponible {
				return domain.ErrInvalidInput
			}
			lote.Estado = entity.LoteEnCuarentena
		} else {
			if lote.Estado != entity.LoteEnCuarentena {
				return domain.ErrInvalidInput
			}
			lote.Estado = entity.LoteDisponible
			lote.RecalcularEstado(ahora)
		}
		lote.UpdatedAt = ahora
		if err := loteRepo.UpdateCantidadYEstado(lote); err != nil {
			return err
		}
		out = toLoteResponse(lote, ahora)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toMovimientoResponse(m *entity.MovimientoInventario) *dto.MovimientoResponse {
	if m == nil {
		return nil
	}
	return &dto.MovimientoResponse{
		ID:             m.ID,
		Numero:         m.Numero,
		SolicitudID:    m.SolicitudID,
		ProductoID:     m.ProductoID,
		LoteID:         m.LoteID,
		Tipo:           m.Tipo,
		Cantidad:       m.Cantidad,
		PrecioUnitario: m.PrecioUnitario,
		ValorTotal:     m.ValorTotal,
		StockAnterior:  m.StockAnterior,
		StockNuevo:     m.StockNuevo,
		DocumentoRef:   m.DocumentoRef,
		Observacion:    m.Observacion,
		UsuarioID:      m.UsuarioID,
		Fecha:          m.Fecha,
	}
}

func toLoteResponse(l *entity.Lote, asOf time.Time) *dto.LoteResponse {
	if l == nil {
		return nil
	}
	return &dto.LoteResponse{
		ID:                 l.ID,
		ProductoID:         l.ProductoID,
		NumeroLote:         l.NumeroLote,
		FechaIngreso:       l.FechaIngreso,
		FechaFabricacion:   l.FechaFabricacion,
		FechaVencimiento:   l.FechaVencimiento,
		CantidadInicial:    l.CantidadInicial,
		CantidadDisponible: l.CantidadDisponible,
		CostoUnitario:      l.CostoUnitario,
		Ubicacion:          l.Ubicacion,
		Estado:             l.Estado,
		DiasParaVencer:     l.DiasParaVencer(asOf),
	}
}
