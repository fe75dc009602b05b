package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
	"github.com/nordico/barber-api/internal/domain/repository"
	"github.com/nordico/barber-api/pkg/config"
)

// DistributionUseCase calcula el reparto de utilidades por sede: ganancia neta
// del período descompuesta en el árbol de participación según el tipo de sede.
type DistributionUseCase struct {
	locations repository.LocationRepository
	analytics repository.AnalyticsRepository
	cfg       config.BusinessConfig
	now       func() time.Time
}

// NewDistributionUseCase construye el caso de uso. now permite inyectar el
// reloj en pruebas; en producción se pasa time.Now.
func NewDistributionUseCase(
	locations repository.LocationRepository,
	analytics repository.AnalyticsRepository,
	cfg config.BusinessConfig,
	now func() time.Time,
) *DistributionUseCase {
	return &DistributionUseCase{locations: locations, analytics: analytics, cfg: cfg, now: now}
}

// distributionConfig traduce la configuración de negocio al tipo del dominio.
func (uc *DistributionUseCase) distributionConfig() finance.DistributionConfig {
	partners := make([]finance.PartnerShare, 0, len(uc.cfg.Partners))
	for _, p := range uc.cfg.Partners {
		partners = append(partners, finance.PartnerShare{Name: p.Name, Percent: p.Percent})
	}
	return finance.DistributionConfig{
		LocalPercent:        uc.cfg.LocalPercent,
		DistributionPercent: uc.cfg.DistributionPercent,
		HeadBarberPercent:   uc.cfg.HeadBarberPercent,
		FranchiseePercent:   uc.cfg.FranchiseePercent,
		PartnersPoolPercent: uc.cfg.PartnersPoolPercent,
		PartnersPercent:     uc.cfg.PartnersPercent,
		PlantPercent:        uc.cfg.PlantPercent,
		Partners:            partners,
	}
}

// ForLocation calcula el reparto de una sede en el período.
func (uc *DistributionUseCase) ForLocation(ctx context.Context, locationID string, q dto.PeriodQuery) (*dto.DistributionResponse, error) {
	loc, err := uc.locations.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	r, err := ResolvePeriod(q, uc.now())
	if err != nil {
		return nil, err
	}
	return uc.forLocation(ctx, loc, r)
}

// ForAllLocations calcula el reparto de todas las sedes más el agregado global.
func (uc *DistributionUseCase) ForAllLocations(ctx context.Context, q dto.PeriodQuery) (*dto.DistributionReportResponse, error) {
	r, err := ResolvePeriod(q, uc.now())
	if err != nil {
		return nil, err
	}
	locs, err := uc.locations.List()
	if err != nil {
		return nil, err
	}
	out := &dto.DistributionReportResponse{
		Period:           q,
		Locations:        make([]dto.DistributionResponse, 0, len(locs)),
		TotalNetProfit:   decimal.Zero,
		TotalUnallocated: decimal.Zero,
	}
	byPartner := make(map[string]decimal.Decimal, len(uc.cfg.Partners))
	for _, loc := range locs {
		resp, err := uc.forLocation(ctx, loc, r)
		if err != nil {
			return nil, err
		}
		out.Locations = append(out.Locations, *resp)
		out.TotalNetProfit = out.TotalNetProfit.Add(resp.NetProfit)
		out.TotalUnallocated = out.TotalUnallocated.Add(resp.Unallocated)
		for _, p := range resp.Partners {
			byPartner[p.Name] = byPartner[p.Name].Add(p.Amount)
		}
	}
	// El desglose consolidado sigue el orden del roster configurado.
	out.Partners = make([]dto.PartnerCutResponse, 0, len(uc.cfg.Partners))
	for _, p := range uc.cfg.Partners {
		out.Partners = append(out.Partners, dto.PartnerCutResponse{
			Name:    p.Name,
			Percent: p.Percent,
			Amount:  byPartner[p.Name],
		})
	}
	return out, nil
}

func (uc *DistributionUseCase) forLocation(ctx context.Context, loc *entity.Location, r finance.DateRange) (*dto.DistributionResponse, error) {
	start, end := rangeBounds(r)
	sales, otherIncome, expenses, _, err := uc.analytics.GetPeriodTotals(ctx, loc.ID, start, end)
	if err != nil {
		return nil, err
	}
	totalIncome := sales.Add(otherIncome)
	netProfit := totalIncome.Sub(expenses)

	b, err := finance.Distribute(netProfit, loc.Kind, uc.distributionConfig())
	if err != nil {
		return nil, err
	}
	return toDistributionResponse(loc, totalIncome, expenses, b), nil
}

func toDistributionResponse(loc *entity.Location, totalIncome, totalExpenses decimal.Decimal, b *finance.Breakdown) *dto.DistributionResponse {
	partners := make([]dto.PartnerCutResponse, 0, len(b.Partners))
	for _, p := range b.Partners {
		partners = append(partners, dto.PartnerCutResponse{
			Name:    p.Name,
			Percent: p.Percent,
			Amount:  p.Amount,
		})
	}
	return &dto.DistributionResponse{
		LocationID:    loc.ID,
		LocationName:  loc.Name,
		LocationKind:  string(loc.Kind),
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetProfit:     b.NetProfit,
		Local:         b.Local,
		HeadBarber:    b.HeadBarber,
		BranchNet:     b.BranchNet,
		Distribution:  b.Distribution,
		Franchisee:    b.Franchisee,
		PartnersPool:  b.PartnersPool,
		PartnersTotal: b.PartnersTotal,
		Plant:         b.Plant,
		Partners:      partners,
		Unallocated:   b.Unallocated,
	}
}
