package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/application/reports"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/pkg/config"
)

var testNow = func() time.Time {
	return time.Date(2026, time.August, 26, 15, 0, 0, 0, time.UTC)
}

// Sucursal con ventas $1200, otros ingresos $100 y gastos $300: ganancia neta
// de $1000 repartida según las reglas por defecto de la cadena.
func TestDistribution_Sucursal1000(t *testing.T) {
	locs := &fakeLocations{locs: []*entity.Location{
		{ID: "magallanes", Name: "MAGALLANES", Kind: entity.KindStandardBranch},
	}}
	analytics := &fakeAnalytics{
		sales:       dec("1200"),
		otherIncome: dec("100"),
		expenses:    dec("300"),
	}
	uc := reports.NewDistributionUseCase(locs, analytics, config.DefaultBusiness(), testNow)

	resp, err := uc.ForLocation(context.Background(), "magallanes", dto.PeriodQuery{Preset: "month"})
	require.NoError(t, err)

	assert.True(t, dec("1300").Equal(resp.TotalIncome), "ingreso total debe ser $1300, fue %s", resp.TotalIncome)
	assert.True(t, dec("1000").Equal(resp.NetProfit), "ganancia neta debe ser $1000, fue %s", resp.NetProfit)
	assert.True(t, dec("500").Equal(resp.Local))
	assert.True(t, dec("25").Equal(resp.HeadBarber), "encargado debe ser $25 (5%% de lo local)")
	assert.True(t, dec("475").Equal(resp.BranchNet))
	assert.True(t, dec("300").Equal(resp.Franchisee))
	assert.True(t, dec("200").Equal(resp.PartnersPool))
	assert.True(t, dec("80").Equal(resp.Plant))

	require.Len(t, resp.Partners, 3)
	for _, p := range resp.Partners {
		assert.True(t, dec("39.96").Equal(p.Amount), "cada socio al 33.3%% recibe $39.96, %s recibió %s", p.Name, p.Amount)
	}
	assert.True(t, dec("0.12").Equal(resp.Unallocated), "el residuo del 0.1%% queda visible, no se normaliza")
}

func TestDistribution_SedeInexistente(t *testing.T) {
	uc := reports.NewDistributionUseCase(&fakeLocations{}, &fakeAnalytics{}, config.DefaultBusiness(), testNow)

	_, err := uc.ForLocation(context.Background(), "no-existe", dto.PeriodQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDistribution_PresetInvalido(t *testing.T) {
	locs := &fakeLocations{locs: []*entity.Location{
		{ID: "magallanes", Name: "MAGALLANES", Kind: entity.KindStandardBranch},
	}}
	uc := reports.NewDistributionUseCase(locs, &fakeAnalytics{}, config.DefaultBusiness(), testNow)

	_, err := uc.ForLocation(context.Background(), "magallanes", dto.PeriodQuery{Preset: "quincena"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El consolidado recorre todas las sedes y suma las utilidades netas.
func TestDistribution_ConsolidadoSumaSedes(t *testing.T) {
	locs := &fakeLocations{locs: []*entity.Location{
		{ID: "magallanes", Name: "MAGALLANES", Kind: entity.KindStandardBranch},
		{ID: "sarrias", Name: "SARRIAS", Kind: entity.KindSecondaryBranch},
		{ID: "psyfn", Name: "PSYFN", Kind: entity.KindCentralPlant},
	}}
	analytics := &fakeAnalytics{
		sales:    dec("500"),
		expenses: dec("100"),
	}
	uc := reports.NewDistributionUseCase(locs, analytics, config.DefaultBusiness(), testNow)

	resp, err := uc.ForAllLocations(context.Background(), dto.PeriodQuery{Preset: "month"})
	require.NoError(t, err)

	require.Len(t, resp.Locations, 3)
	// Cada sede aporta $400 netos con el fake compartido.
	assert.True(t, dec("1200").Equal(resp.TotalNetProfit),
		"el total consolidado debe sumar las tres sedes, fue %s", resp.TotalNetProfit)

	// La planta no tiene tramos de franquiciado ni encargado.
	for _, l := range resp.Locations {
		if l.LocationKind == string(entity.KindCentralPlant) {
			assert.True(t, l.Franchisee.IsZero(), "la planta no paga franquiciado")
			assert.True(t, l.HeadBarber.IsZero(), "la planta no paga encargado")
		}
	}

	// Desglose total por socio: cada sucursal aporta 33.3% de $48 = $15.984 y
	// la planta 33.3% de $200 = $66.60, $98.568 por socio en total.
	require.Len(t, resp.Partners, 3)
	for _, p := range resp.Partners {
		assert.True(t, dec("98.568").Equal(p.Amount),
			"%s debe acumular $98.568 entre las tres sedes, fue %s", p.Name, p.Amount)
	}
	// Residuo consolidado: 0.048 por sucursal más 0.2 de la planta.
	assert.True(t, dec("0.296").Equal(resp.TotalUnallocated),
		"el residuo consolidado debe ser $0.296, fue %s", resp.TotalUnallocated)
}
