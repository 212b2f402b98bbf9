package alerta

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/Xavis19/NuclearVET-sub001/internal/application/dto"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/repository"
	"github.com/Xavis19/NuclearVET-sub001/pkg/logger"
)

// AsegurarStockBajo crea una alerta STOCK_BAJO si el producto está en o por
// debajo de su umbral y no existe ya una sin leer (dedup). Pensada para
// llamarse dentro de la misma transacción del movimiento que mutó el stock.
// Devuelve true si se insertó una alerta nueva.
func AsegurarStockBajo(alertaRepo repository.AlertaRepository, p *entity.Producto, ahora time.Time) (bool, error) {
	if !p.StockBajo() {
		return false, nil
	}
	existe, err := alertaRepo.ExisteNoLeida(p.ID, nil, entity.AlertaStockBajo)
	if err != nil {
		return false, err
	}
	if existe {
		return false, nil
	}
	prioridad := entity.PrioridadMedia
	if p.StockActual == 0 {
		prioridad = entity.PrioridadAlta
	}
	a := &entity.AlertaInventario{
		ID:         uuid.New().String(),
		ProductoID: p.ID,
		Tipo:       entity.AlertaStockBajo,
		Mensaje:    fmt.Sprintf("stock de %s en %d unidades (mínimo %d)", p.Nombre, p.StockActual, p.StockMinimo),
		Prioridad:  prioridad,
		CreatedAt:  ahora,
	}
	if err := alertaRepo.Create(a); err != nil {
		return false, err
	}
	return true, nil
}

// asegurarAlertaLote crea una alerta PROXIMO_VENCER o VENCIDO para el lote si
// no hay ya una sin leer del mismo tipo. Una alerta VENCIDO no elimina la
// PROXIMO_VENCER previa; ambas conviven hasta que se marquen leídas.
func asegurarAlertaLote(alertaRepo repository.AlertaRepository, l *entity.Lote, tipo, mensaje, prioridad string, ahora time.Time) (bool, error) {
	existe, err := alertaRepo.ExisteNoLeida(l.ProductoID, &l.ID, tipo)
	if err != nil {
		return false, err
	}
	if existe {
		return false, nil
	}
	a := &entity.AlertaInventario{
		ID:         uuid.New().String(),
		ProductoID: l.ProductoID,
		LoteID:     &l.ID,
		Tipo:       tipo,
		Mensaje:    mensaje,
		Prioridad:  prioridad,
		CreatedAt:  ahora,
	}
	if err := alertaRepo.Create(a); err != nil {
		return false, err
	}
	return true, nil
}

// Generador recorre los lotes con fecha de vencimiento y mantiene las alertas
// de vencimiento; también marca VENCIDO y descuenta el stock derivado del
// producto cuando un lote cruza su fecha.
type Generador struct {
	txRunner  TxRunner
	loteRepo  repository.LoteRepository
	diasAviso int
	log       *logger.Logger
}

// NewGenerador construye el generador. diasAviso <= 0 usa el umbral por
// defecto de 30 días.
func NewGenerador(txRunner TxRunner, loteRepo repository.LoteRepository, diasAviso int, log *logger.Logger) *Generador {
	if diasAviso <= 0 {
		diasAviso = 30
	}
	return &Generador{txRunner: txRunner, loteRepo: loteRepo, diasAviso: diasAviso, log: log}
}

// EjecutarBarrido pasa por todos los lotes con vencimiento. El fallo en un
// lote se registra y no bloquea el resto de la pasada; la deduplicación hace
// la pasada idempotente, así que basta con reintentarla en el siguiente tick.
func (g *Generador) EjecutarBarrido(ctx context.Context) (*dto.BarridoResponse, error) {
	lotes, err := g.loteRepo.ListConVencimiento()
	if err != nil {
		return nil, fmt.Errorf("listar lotes con vencimiento: %w", err)
	}

	res := &dto.BarridoResponse{LotesRevisados: len(lotes)}
	ahora := time.Now()
	for _, l := range lotes {
		if err := g.revisarLote(ctx, l.ProductoID, l.ID, ahora, res); err != nil {
			res.ErroresOmitidos++
			g.log.Error().Err(err).
				Str("lote_id", l.ID).
				Str("producto_id", l.ProductoID).
				Msg("barrido: lote omitido")
		}
	}
	return res, nil
}

// revisarLote procesa un lote en su propia transacción corta: relee con lock,
// recalcula estado y asegura las alertas que correspondan. Adquiere los locks
// en el mismo orden que el registro de movimientos (producto y luego lote);
// invertirlo permitiría un abrazo mortal con una salida concurrente.
func (g *Generador) revisarLote(ctx context.Context, productoID, loteID string, ahora time.Time, res *dto.BarridoResponse) error {
	return g.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		loteRepo repository.LoteRepository,
		_ repository.MovimientoRepository,
		alertaRepo repository.AlertaRepository,
	) error {
		p, err := productoRepo.GetForUpdate(productoID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		l, err := loteRepo.GetForUpdate(loteID)
		if err != nil {
			return err
		}
		if l == nil {
			return domain.ErrNotFound
		}

		estadoPrevio := l.Estado
		l.RecalcularEstado(ahora)

		if l.Estado == entity.LoteVencido {
			if estadoPrevio != entity.LoteVencido {
				// El lote acaba de cruzar su fecha: persistir el estado y
				// retirar su cantidad de la caché de stock del producto.
				if err := loteRepo.UpdateEstado(l.ID, entity.LoteVencido); err != nil {
					return err
				}
				p.StockActual -= l.CantidadDisponible
				if p.StockActual < 0 {
					p.StockActual = 0
				}
				if err := productoRepo.UpdateStockActual(p.ID, p.StockActual); err != nil {
					return err
				}
				res.LotesVencidos++
				if _, err := AsegurarStockBajo(alertaRepo, p, ahora); err != nil {
					return err
				}
			}
			msg := fmt.Sprintf("lote %s vencido el %s con %d unidades restantes",
				l.NumeroLote, l.FechaVencimiento.Format("2006-01-02"), l.CantidadDisponible)
			creada, err := asegurarAlertaLote(alertaRepo, l, entity.AlertaVencido, msg, entity.PrioridadAlta, ahora)
			if err != nil {
				return err
			}
			if creada {
				res.AlertasCreadas++
			}
			return nil
		}

		dias := l.DiasParaVencer(ahora)
		if dias != nil && *dias <= g.diasAviso {
			prioridad := entity.PrioridadMedia
			if *dias <= 7 {
				prioridad = entity.PrioridadAlta
			}
			msg := fmt.Sprintf("lote %s vence en %d días (%s)",
				l.NumeroLote, *dias, l.FechaVencimiento.Format("2006-01-02"))
			creada, err := asegurarAlertaLote(alertaRepo, l, entity.AlertaProximoVencer, msg, prioridad, ahora)
			if err != nil {
				return err
			}
			if creada {
				res.AlertasCreadas++
			}
		}
		return nil
	})
}
