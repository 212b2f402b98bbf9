package inventory

import (
	"sort"
	"time"

	"github.com/Xavis19/NuclearVET-sub001/internal/domain"
	"github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"
)

// AsignacionLote es una decisión del motor: cuánto consumir de qué lote.
type AsignacionLote struct {
	Lote     *entity.Lote
	Cantidad int
}

// ResultadoAsignacion agrupa las asignaciones de una salida sin lote explícito.
type ResultadoAsignacion struct {
	Asignaciones []AsignacionLote
	Total        int
}

// SeleccionarLotes decide de qué lotes cubrir una salida de `cantidad` unidades
// con política FEFO (primero en vencer, primero en salir).
//
// Elegibles: lotes DISPONIBLE, no vencidos a `asOf`, con cantidad > 0.
// Orden: FechaVencimiento ascendente, lotes sin vencimiento al final (nunca
// vencen, son los menos urgentes); desempate por FechaIngreso y luego por ID
// para que la decisión sea determinista. Consumo greedy: de cada lote se toma
// min(restante, disponible).
//
// Todo o nada: si la disponibilidad elegible acumulada no cubre la cantidad,
// retorna StockInsuficienteError y ninguna asignación; el caller no debe haber
// mutado nada todavía.
func SeleccionarLotes(cantidad int, lotes []*entity.Lote, asOf time.Time) (*ResultadoAsignacion, error) {
	if cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	elegibles := make([]*entity.Lote, 0, len(lotes))
	disponible := 0
	for _, l := range lotes {
		if l.Asignable(asOf) {
			elegibles = append(elegibles, l)
			disponible += l.CantidadDisponible
		}
	}
	if disponible < cantidad {
		productoID := ""
		if len(lotes) > 0 {
			productoID = lotes[0].ProductoID
		}
		return nil, &domain.StockInsuficienteError{
			ProductoID: productoID,
			Solicitado: cantidad,
			Disponible: disponible,
		}
	}

	ordenarFEFO(elegibles)

	resultado := &ResultadoAsignacion{}
	restante := cantidad
	for _, l := range elegibles {
		if restante == 0 {
			break
		}
		tomar := restante
		if l.CantidadDisponible < tomar {
			tomar = l.CantidadDisponible
		}
		resultado.Asignaciones = append(resultado.Asignaciones, AsignacionLote{Lote: l, Cantidad: tomar})
		resultado.Total += tomar
		restante -= tomar
	}
	return resultado, nil
}

// ordenarFEFO ordena in place: vencimiento ascendente, sin vencimiento al
// final; desempate por fecha de ingreso y luego por ID.
func ordenarFEFO(lotes []*entity.Lote) {
	sort.SliceStable(lotes, func(i, j int) bool {
		a, b := lotes[i], lotes[j]
		switch {
		case a.FechaVencimiento == nil && b.FechaVencimiento == nil:
			// ambos sin vencimiento: cae al desempate
		case a.FechaVencimiento == nil:
			return false
		case b.FechaVencimiento == nil:
			return true
		case !a.FechaVencimiento.Equal(*b.FechaVencimiento):
			return a.FechaVencimiento.Before(*b.FechaVencimiento)
		}
		if !a.FechaIngreso.Equal(b.FechaIngreso) {
			return a.FechaIngreso.Before(b.FechaIngreso)
		}
		return a.ID < b.ID
	})
}

// DisponibilidadElegible suma la cantidad asignable del conjunto de lotes.
func DisponibilidadElegible(lotes []*entity.Lote, asOf time.Time) int {
	total := 0
	for _, l := range lotes {
		if l.Asignable(asOf) {
			total += l.CantidadDisponible
		}
	}
	return total
}
