package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// PartnerShare porcentaje de participación de un socio.
type PartnerShare struct {
	Name    string
	Percent decimal.Decimal
}

// DistributionConfig porcentajes de la distribución de ganancias. Se inyecta
// desde configuración; el cálculo no conoce ningún porcentaje como literal.
type DistributionConfig struct {
	LocalPercent        decimal.Decimal // parte que queda en la sede
	DistributionPercent decimal.Decimal // parte que entra a distribución
	HeadBarberPercent   decimal.Decimal // cuota del encargado sobre la parte local (sucursales)
	FranchiseePercent   decimal.Decimal // franquiciado sobre la parte a distribuir (sucursales)
	PartnersPoolPercent decimal.Decimal // pozo de socios sobre la parte a distribuir (sucursales)
	PartnersPercent     decimal.Decimal // socios sobre el pozo
	PlantPercent        decimal.Decimal // planta sobre el pozo
	Partners            []PartnerShare
}

// PartnerCut monto asignado a un socio concreto.
type PartnerCut struct {
	Name    string
	Percent decimal.Decimal
	Amount  decimal.Decimal
}

// Breakdown árbol de distribución de una ganancia neta. Expone todos los
// valores intermedios y hojas para que el llamador renderice cualquier
// subconjunto sin recalcular.
type Breakdown struct {
	Kind      entity.LocationKind
	NetProfit decimal.Decimal

	Local         decimal.Decimal // 50% que queda en la sede
	HeadBarber    decimal.Decimal // cuota del encargado (solo sucursales)
	BranchNet     decimal.Decimal // parte local tras el encargado
	Distribution  decimal.Decimal // 50% que entra a distribución
	Franchisee    decimal.Decimal // franquiciado (solo sucursales)
	PartnersPool  decimal.Decimal // pozo de socios
	PartnersTotal decimal.Decimal // total repartido entre socios
	Plant         decimal.Decimal // cuota de la planta sobre el pozo

	Partners []PartnerCut
	// Unallocated residuo del pozo de socios cuando los porcentajes de la
	// nómina no suman 100 (ej. 33.3×3 deja 0.1% sin asignar). Se expone en
	// lugar de repartirse para que el llamador detecte la mala configuración.
	Unallocated decimal.Decimal
}

// LeafTotal suma de todas las hojas del árbol. Debe ser exactamente igual a
// NetProfit para cualquier tipo de sede.
func (b *Breakdown) LeafTotal() decimal.Decimal {
	total := b.Unallocated
	for _, p := range b.Partners {
		total = total.Add(p.Amount)
	}
	if b.Kind == entity.KindCentralPlant {
		// La parte local de la planta no se subdivide: es hoja.
		return total.Add(b.Local)
	}
	return total.
		Add(b.HeadBarber).
		Add(b.BranchNet).
		Add(b.Franchisee).
		Add(b.Plant)
}

// Distribute descompone una ganancia neta (puede ser negativa: las pérdidas se
// propagan con su signo, nunca se recortan a cero) en el árbol de participación
// según el tipo de sede. Tipo desconocido devuelve error, sin cálculo por defecto.
func Distribute(netProfit decimal.Decimal, kind entity.LocationKind, cfg DistributionConfig) (*Breakdown, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLocationKind, kind)
	}

	b := &Breakdown{Kind: kind, NetProfit: netProfit}
	b.Local = pct(netProfit, cfg.LocalPercent)
	// La distribución se toma por resta para que local+distribución cierre
	// exacto incluso con porcentajes que no dividen limpio.
	b.Distribution = netProfit.Sub(b.Local)

	if kind.IsBranch() {
		b.HeadBarber = pct(b.Local, cfg.HeadBarberPercent)
		b.BranchNet = b.Local.Sub(b.HeadBarber)

		b.Franchisee = pct(b.Distribution, cfg.FranchiseePercent)
		b.PartnersPool = b.Distribution.Sub(b.Franchisee)

		b.PartnersTotal = pct(b.PartnersPool, cfg.PartnersPercent)
		b.Plant = b.PartnersPool.Sub(b.PartnersTotal)
	} else {
		// Planta: la parte local no se subdivide y la distribución va
		// directa a los socios, sin franquiciado ni encargado.
		b.BranchNet = b.Local
		b.PartnersPool = b.Distribution
		b.PartnersTotal = b.Distribution
	}

	b.Partners = make([]PartnerCut, 0, len(cfg.Partners))
	assigned := decimal.Zero
	for _, p := range cfg.Partners {
		amount := pct(b.PartnersTotal, p.Percent)
		assigned = assigned.Add(amount)
		b.Partners = append(b.Partners, PartnerCut{Name: p.Name, Percent: p.Percent, Amount: amount})
	}
	b.Unallocated = b.PartnersTotal.Sub(assigned)

	return b, nil
}

// pct devuelve amount × percent/100.
func pct(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(oneHundred)
}
