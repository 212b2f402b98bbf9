package alerta

import (
	"context"
	"time"

	"github.com/Xavis19/NuclearVET-sub001/pkg/logger"
)

// Sweeper ejecuta el barrido de vencimientos en un intervalo fijo, en paralelo
// con las peticiones. Puede leer estado ligeramente desfasado respecto a un
// movimiento concurrente; la pasada es idempotente y se repite en el próximo
// tick, así que no hace falta coordinación adicional.
type Sweeper struct {
	gen       *Generador
	intervalo time.Duration
	log       *logger.Logger
}

// NewSweeper construye el sweeper. intervalo <= 0 usa 24h.
func NewSweeper(gen *Generador, intervalo time.Duration, log *logger.Logger) *Sweeper {
	if intervalo <= 0 {
		intervalo = 24 * time.Hour
	}
	return &Sweeper{gen: gen, intervalo: intervalo, log: log}
}

// Run bloquea ejecutando una pasada inmediata y luego una por tick, hasta que
// el contexto se cancele. Lanzar en su propia goroutine desde main.
func (s *Sweeper) Run(ctx context.Context) {
	s.barrer(ctx)

	ticker := time.NewTicker(s.intervalo)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("sweeper detenido")
			return
		case <-ticker.C:
			s.barrer(ctx)
		}
	}
}

func (s *Sweeper) barrer(ctx context.Context) {
	res, err := s.gen.EjecutarBarrido(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de vencimientos falló")
		return
	}
	s.log.Info().
		Int("lotes_revisados", res.LotesRevisados).
		Int("alertas_creadas", res.AlertasCreadas).
		Int("lotes_vencidos", res.LotesVencidos).
		Int("errores_omitidos", res.ErroresOmitidos).
		Msg("barrido de vencimientos completado")
}
