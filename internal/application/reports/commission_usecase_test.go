package reports_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordico/barber-api/internal/application/reports"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
	"github.com/nordico/barber-api/internal/domain/repository"
	"github.com/nordico/barber-api/pkg/config"
)

// corteItem genera n líneas de corte de barbería a $10 cada una.
func corteItems(n int) []entity.TicketItem {
	items := make([]entity.TicketItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, entity.TicketItem{
			ItemID:   "corte",
			Name:     "Corte Clásico",
			Price:    dec("10"),
			Quantity: 1,
			Type:     entity.ItemTypeService,
			Category: finance.CategoryBarberia,
		})
	}
	return items
}

func commissionTestStaff() *fakeStaff {
	return &fakeStaff{staff: []*entity.Staff{
		{ID: "b1", LocationID: "magallanes", Name: "Luis", Role: entity.RoleBarber},
		{ID: "b2", LocationID: "magallanes", Name: "Pedro", Role: entity.RoleBarber},
		{ID: "hb", LocationID: "magallanes", Name: "Carlos", Role: entity.RoleHeadBarber},
		{ID: "rec", LocationID: "magallanes", Name: "Ana", Role: entity.RoleReceptionist},
	}}
}

// 35 servicios calificados caen en el tramo medio: 60% sobre $350 = $210.
func TestCommission_TramoMedio(t *testing.T) {
	analytics := &fakeAnalytics{weekItems: []repository.BarberWeekResult{
		{BarberID: "b1", Items: corteItems(35)},
	}}
	uc := reports.NewCommissionUseCase(commissionTestStaff(), analytics, config.DefaultBusiness(), testNow)

	rep, err := uc.ForBarber(context.Background(), "b1", "")
	require.NoError(t, err)

	assert.Equal(t, 35, rep.WeeklyServices)
	assert.True(t, dec("350").Equal(rep.QualifyingRevenue))
	assert.True(t, dec("60").Equal(rep.Percent), "35 servicios caen en el tramo del 60%%")
	assert.True(t, dec("210").Equal(rep.Earned), "comisión debe ser $210, fue %s", rep.Earned)
	assert.Equal(t, 41, rep.NextThreshold, "el siguiente tramo arranca en 41 servicios")
	assert.Equal(t, 6, rep.ServicesNeeded)
	assert.False(t, rep.AtMaxTier)
}

// La semana contable va de lunes a domingo; ref en miércoles 2026-08-26
// resuelve la semana del lunes 24 al domingo 30.
func TestCommission_SemanaLunesADomingo(t *testing.T) {
	analytics := &fakeAnalytics{}
	uc := reports.NewCommissionUseCase(commissionTestStaff(), analytics, config.DefaultBusiness(), testNow)

	rep, err := uc.ForBarber(context.Background(), "b1", "2026-08-26")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-24", rep.WeekStart)
	assert.Equal(t, "2026-08-30", rep.WeekEnd)
}

// El encargado no usa tramos: comisión fija (default 65% si no tiene configurada).
func TestCommission_EncargadoComisionFija(t *testing.T) {
	analytics := &fakeAnalytics{weekItems: []repository.BarberWeekResult{
		{BarberID: "hb", Items: corteItems(10)},
	}}
	uc := reports.NewCommissionUseCase(commissionTestStaff(), analytics, config.DefaultBusiness(), testNow)

	rep, err := uc.ForBarber(context.Background(), "hb", "")
	require.NoError(t, err)

	assert.True(t, dec("65").Equal(rep.Percent), "el encargado usa la comisión fija por defecto")
	assert.True(t, dec("65").Equal(rep.Earned), "65%% de $100 = $65, fue %s", rep.Earned)
	assert.True(t, rep.AtMaxTier, "el encargado no tiene tramo siguiente")
}

// El tablero incluye a todos los barberos de la sede; los que no vendieron
// quedan en el tramo más bajo con cero.
func TestCommission_TableroIncluyeBarberosSinVentas(t *testing.T) {
	analytics := &fakeAnalytics{weekItems: []repository.BarberWeekResult{
		{BarberID: "b1", Items: corteItems(45)},
	}}
	uc := reports.NewCommissionUseCase(commissionTestStaff(), analytics, config.DefaultBusiness(), testNow)

	board, err := uc.ForLocation(context.Background(), "magallanes", "")
	require.NoError(t, err)

	require.Len(t, board.Barbers, 3, "el tablero lista barberos y encargado, no recepcionistas")

	byID := make(map[string]decimal.Decimal, len(board.Barbers))
	for _, b := range board.Barbers {
		byID[b.BarberID] = b.Earned
	}
	// 45 servicios: tramo máximo del 65% sobre $450.
	assert.True(t, dec("292.5").Equal(byID["b1"]), "b1 debe ganar $292.50, fue %s", byID["b1"])
	assert.True(t, byID["b2"].IsZero(), "barbero sin ventas gana cero")
}

func TestCommission_RolNoBarbero(t *testing.T) {
	uc := reports.NewCommissionUseCase(commissionTestStaff(), &fakeAnalytics{}, config.DefaultBusiness(), testNow)

	_, err := uc.ForBarber(context.Background(), "rec", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "una recepcionista no tiene reporte de comisión")
}

func TestCommission_BarberoInexistente(t *testing.T) {
	uc := reports.NewCommissionUseCase(commissionTestStaff(), &fakeAnalytics{}, config.DefaultBusiness(), testNow)

	_, err := uc.ForBarber(context.Background(), "nadie", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
