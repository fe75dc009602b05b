package reports

import (
	"context"
	"time"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
	"github.com/nordico/barber-api/internal/domain/repository"
	"github.com/nordico/barber-api/pkg/config"
)

// CommissionUseCase comisiones semanales de barberos: tramo según servicios
// calificados de la semana (lunes a domingo) y monto ganado sobre el ingreso
// de esos servicios.
type CommissionUseCase struct {
	staff     repository.StaffRepository
	analytics repository.AnalyticsRepository
	cfg       config.BusinessConfig
	now       func() time.Time
}

// NewCommissionUseCase construye el caso de uso.
func NewCommissionUseCase(
	staff repository.StaffRepository,
	analytics repository.AnalyticsRepository,
	cfg config.BusinessConfig,
	now func() time.Time,
) *CommissionUseCase {
	return &CommissionUseCase{staff: staff, analytics: analytics, cfg: cfg, now: now}
}

func (uc *CommissionUseCase) commissionConfig() finance.CommissionConfig {
	tiers := make([]finance.CommissionTier, 0, len(uc.cfg.CommissionTiers))
	for _, t := range uc.cfg.CommissionTiers {
		tiers = append(tiers, finance.CommissionTier{
			MinServices:   t.MinServices,
			Percent:       t.Percent,
			NextThreshold: t.NextThreshold,
		})
	}
	return finance.CommissionConfig{
		Tiers:             tiers,
		HeadBarberDefault: uc.cfg.HeadBarberDefaultCommission,
	}
}

// weekOf devuelve la semana que contiene a ref, o la semana en curso si ref
// viene vacío. ref usa formato 2006-01-02.
func (uc *CommissionUseCase) weekOf(ref string) (finance.DateRange, error) {
	t := uc.now()
	if ref != "" {
		parsed, err := time.ParseInLocation(dateLayout, ref, t.Location())
		if err != nil {
			return finance.DateRange{}, domain.ErrInvalidInput
		}
		t = parsed
	}
	return finance.WeekOf(t), nil
}

// ForBarber calcula la comisión de un barbero para la semana que contiene a
// ref (vacío = semana en curso).
func (uc *CommissionUseCase) ForBarber(ctx context.Context, barberID, ref string) (*dto.CommissionReportResponse, error) {
	barber, err := uc.staff.GetByID(barberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, domain.ErrNotFound
	}
	if !barber.IsBarber() {
		return nil, domain.ErrInvalidInput
	}
	week, err := uc.weekOf(ref)
	if err != nil {
		return nil, err
	}
	results, err := uc.analytics.GetBarberWeekItems(ctx, barber.LocationID, *week.Start, *week.End)
	if err != nil {
		return nil, err
	}
	var items []entity.TicketItem
	for _, r := range results {
		if r.BarberID == barberID {
			items = r.Items
			break
		}
	}
	return uc.report(barber, week, items)
}

// ForLocation calcula la comisión semanal de todos los barberos de la sede,
// incluidos los que no vendieron nada (quedan en el tramo más bajo con cero).
func (uc *CommissionUseCase) ForLocation(ctx context.Context, locationID, ref string) (*dto.CommissionBoardResponse, error) {
	week, err := uc.weekOf(ref)
	if err != nil {
		return nil, err
	}
	barbers, err := uc.staff.ListBarbersByLocation(locationID)
	if err != nil {
		return nil, err
	}
	results, err := uc.analytics.GetBarberWeekItems(ctx, locationID, *week.Start, *week.End)
	if err != nil {
		return nil, err
	}
	byBarber := make(map[string][]entity.TicketItem, len(results))
	for _, r := range results {
		byBarber[r.BarberID] = r.Items
	}

	board := &dto.CommissionBoardResponse{
		LocationID: locationID,
		WeekStart:  week.Start.Format(dateLayout),
		WeekEnd:    week.End.Format(dateLayout),
		Barbers:    make([]dto.CommissionReportResponse, 0, len(barbers)),
	}
	for _, b := range barbers {
		rep, err := uc.report(b, week, byBarber[b.ID])
		if err != nil {
			return nil, err
		}
		board.Barbers = append(board.Barbers, *rep)
	}
	return board, nil
}

func (uc *CommissionUseCase) report(b *entity.Staff, week finance.DateRange, items []entity.TicketItem) (*dto.CommissionReportResponse, error) {
	count, revenue := finance.QualifyingServices(items)
	res, err := finance.CalculateCommission(b.Role, b.CommissionPercentage, count, revenue, uc.commissionConfig())
	if err != nil {
		return nil, err
	}
	return &dto.CommissionReportResponse{
		BarberID:          b.ID,
		BarberName:        b.Name,
		Role:              b.Role,
		WeekStart:         week.Start.Format(dateLayout),
		WeekEnd:           week.End.Format(dateLayout),
		WeeklyServices:    res.WeeklyServices,
		QualifyingRevenue: res.QualifyingRevenue,
		Percent:           res.Percent,
		Earned:            res.Earned,
		NextThreshold:     res.NextThreshold,
		ServicesNeeded:    res.ServicesNeeded,
		Progress:          res.Progress,
		AtMaxTier:         res.AtMaxTier,
	}, nil
}
