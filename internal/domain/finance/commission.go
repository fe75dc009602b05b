package finance

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
)

// CommissionTier tramo de comisión semanal. NextThreshold en 0 marca el tramo
// máximo (no hay siguiente umbral).
type CommissionTier struct {
	MinServices   int
	Percent       decimal.Decimal
	NextThreshold int
}

// CommissionConfig tabla ordenable de tramos más la comisión fija por defecto
// del encargado. Los tramos se evalúan del umbral más alto hacia abajo; agregar
// o quitar tramos no toca el código de cálculo.
type CommissionConfig struct {
	Tiers             []CommissionTier
	HeadBarberDefault decimal.Decimal
}

// CommissionResult resultado del cálculo semanal para un barbero.
type CommissionResult struct {
	WeeklyServices    int
	QualifyingRevenue decimal.Decimal
	Percent           decimal.Decimal // porcentaje efectivo aplicado
	Earned            decimal.Decimal // QualifyingRevenue × Percent/100
	NextThreshold     int             // 0 = tramo máximo
	ServicesNeeded    int             // servicios que faltan para el siguiente tramo
	Progress          decimal.Decimal // avance hacia el siguiente umbral, 0–100
	AtMaxTier         bool
}

// CalculateCommission computa el tramo y la comisión ganada de un barbero según
// su conteo semanal de servicios calificados y el ingreso de esos servicios.
//
// Para head_barber la tabla no aplica: se usa configuredPercent (o el default
// si está en cero) y el avance se reporta siempre como máximo.
func CalculateCommission(
	role string,
	configuredPercent decimal.Decimal,
	weeklyServices int,
	qualifyingRevenue decimal.Decimal,
	cfg CommissionConfig,
) (CommissionResult, error) {
	if role == entity.RoleHeadBarber {
		percent := configuredPercent
		if percent.IsZero() {
			percent = cfg.HeadBarberDefault
		}
		return CommissionResult{
			WeeklyServices:    weeklyServices,
			QualifyingRevenue: qualifyingRevenue,
			Percent:           percent,
			Earned:            pct(qualifyingRevenue, percent),
			NextThreshold:     0,
			ServicesNeeded:    0,
			Progress:          oneHundred,
			AtMaxTier:         true,
		}, nil
	}

	tier, err := tierFor(weeklyServices, cfg.Tiers)
	if err != nil {
		return CommissionResult{}, err
	}

	res := CommissionResult{
		WeeklyServices:    weeklyServices,
		QualifyingRevenue: qualifyingRevenue,
		Percent:           tier.Percent,
		Earned:            pct(qualifyingRevenue, tier.Percent),
		NextThreshold:     tier.NextThreshold,
		AtMaxTier:         tier.NextThreshold == 0,
	}
	if tier.NextThreshold == 0 {
		res.Progress = oneHundred
		return res, nil
	}
	res.ServicesNeeded = tier.NextThreshold - weeklyServices
	res.Progress = decimal.NewFromInt(int64(weeklyServices)).
		Mul(oneHundred).
		Div(decimal.NewFromInt(int64(tier.NextThreshold)))
	return res, nil
}

// tierFor selecciona el tramo aplicable evaluando de mayor a menor MinServices.
func tierFor(weeklyServices int, tiers []CommissionTier) (CommissionTier, error) {
	if len(tiers) == 0 {
		return CommissionTier{}, fmt.Errorf("%w: tabla de tramos vacía", domain.ErrInvalidInput)
	}
	ordered := make([]CommissionTier, len(tiers))
	copy(ordered, tiers)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].MinServices > ordered[j].MinServices
	})
	for _, t := range ordered {
		if weeklyServices >= t.MinServices {
			return t, nil
		}
	}
	// Conteos por debajo del tramo más bajo caen en él.
	return ordered[len(ordered)-1], nil
}

// QualifyingServices cuenta los servicios calificados y suma su ingreso sobre
// un conjunto de líneas (ya filtradas a la semana relevante por el llamador).
// El conteo suma cantidades, no líneas.
func QualifyingServices(items []entity.TicketItem) (count int, revenue decimal.Decimal) {
	revenue = decimal.Zero
	for _, it := range items {
		if !IsQualifyingService(it) {
			continue
		}
		count += it.Quantity
		revenue = revenue.Add(it.Subtotal())
	}
	return count, revenue
}
