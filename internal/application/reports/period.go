// Package reports contiene los casos de uso de reportes financieros: reparto
// de utilidades, comisiones semanales, ingresos por rubro, rendimiento por
// ítem, dashboard y cierre de caja.
package reports

import (
	"time"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/finance"
)

const dateLayout = "2006-01-02"

// ResolvePeriod convierte el filtro de la petición en un DateRange. Un preset
// con nombre gana sobre el rango explícito; sin preset ni fechas el rango queda
// sin límites (devuelve todo el histórico).
func ResolvePeriod(q dto.PeriodQuery, now time.Time) (finance.DateRange, error) {
	switch q.Preset {
	case "today":
		return finance.Today(now), nil
	case "month":
		return finance.ThisMonth(now), nil
	case "year":
		return finance.ThisYear(now), nil
	case "":
	default:
		return finance.DateRange{}, domain.ErrInvalidInput
	}

	var start, end *time.Time
	if q.Start != "" {
		t, err := time.ParseInLocation(dateLayout, q.Start, now.Location())
		if err != nil {
			return finance.DateRange{}, domain.ErrInvalidInput
		}
		start = &t
	}
	if q.End != "" {
		t, err := time.ParseInLocation(dateLayout, q.End, now.Location())
		if err != nil {
			return finance.DateRange{}, domain.ErrInvalidInput
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return finance.DateRange{}, domain.ErrInvalidInput
	}
	return finance.NewDateRange(start, end), nil
}

// rangeBounds materializa los extremos del rango para las consultas SQL, que
// no aceptan extremos abiertos. Los límites abiertos se sustituyen por fechas
// centinela fuera de toda operación real.
func rangeBounds(r finance.DateRange) (time.Time, time.Time) {
	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
	if r.Start != nil {
		start = *r.Start
	}
	if r.End != nil {
		end = *r.End
	}
	return start, end
}
