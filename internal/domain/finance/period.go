package finance

import (
	"time"

	"github.com/nordico/barber-api/internal/domain/entity"
)

// DateRange rango de fechas inclusivo. Un extremo nil significa sin límite por
// ese lado. Los extremos se normalizan al construirse: Start al comienzo de su
// día (00:00:00.000) y End al final (23:59:59.999...).
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// NewDateRange construye un rango normalizado. Cualquier extremo puede ser nil.
func NewDateRange(start, end *time.Time) DateRange {
	var r DateRange
	if start != nil {
		s := StartOfDay(*start)
		r.Start = &s
	}
	if end != nil {
		e := EndOfDay(*end)
		r.End = &e
	}
	return r
}

// Contains indica si t cae dentro del rango (extremos inclusivos).
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// IsUnbounded indica si el rango no tiene ningún límite (devuelve todo).
func (r DateRange) IsUnbounded() bool {
	return r.Start == nil && r.End == nil
}

// StartOfDay devuelve t a las 00:00:00.000 de su día, misma zona horaria.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay devuelve el último instante del día de t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// Presets con captura explícita del reloj: el llamador pasa time.Now() y a
// partir de ahí el rango es un valor puro.

// Today rango del día de now.
func Today(now time.Time) DateRange {
	s := StartOfDay(now)
	e := EndOfDay(now)
	return DateRange{Start: &s, End: &e}
}

// ThisMonth rango del primer al último día del mes de now.
func ThisMonth(now time.Time) DateRange {
	s := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	e := EndOfDay(s.AddDate(0, 1, -1))
	return DateRange{Start: &s, End: &e}
}

// ThisYear rango del 1 de enero al 31 de diciembre del año de now.
func ThisYear(now time.Time) DateRange {
	s := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	e := EndOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()))
	return DateRange{Start: &s, End: &e}
}

// WeekOf rango de la semana laboral que contiene a t: lunes 00:00:00 hasta el
// domingo siguiente al final del día. Si t es domingo, la semana empieza el
// lunes anterior (6 días atrás).
func WeekOf(t time.Time) DateRange {
	daysBack := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		daysBack = 6
	}
	s := StartOfDay(t.AddDate(0, 0, -daysBack))
	e := EndOfDay(s.AddDate(0, 0, 6))
	return DateRange{Start: &s, End: &e}
}

// Filter devuelve los elementos cuyo campo de fecha (extraído con at) cae en el
// rango. Con rango sin límites devuelve la colección tal cual. Función pura:
// nunca modifica la entrada.
func Filter[T any](items []T, at func(T) time.Time, r DateRange) []T {
	if r.IsUnbounded() {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if r.Contains(at(it)) {
			out = append(out, it)
		}
	}
	return out
}

// FilterTransactions filtra transacciones por EndTime.
func FilterTransactions(txs []entity.Transaction, r DateRange) []entity.Transaction {
	return Filter(txs, func(tx entity.Transaction) time.Time { return tx.EndTime }, r)
}

// FilterExpenses filtra gastos por Timestamp.
func FilterExpenses(exps []entity.Expense, r DateRange) []entity.Expense {
	return Filter(exps, func(e entity.Expense) time.Time { return e.Timestamp }, r)
}

// FilterOtherIncomes filtra otros ingresos por Timestamp.
func FilterOtherIncomes(incomes []entity.OtherIncome, r DateRange) []entity.OtherIncome {
	return Filter(incomes, func(i entity.OtherIncome) time.Time { return i.Timestamp }, r)
}
