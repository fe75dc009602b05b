package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/finance"
)

// testDistributionConfig reglas vigentes de la cadena: 50/50, encargado 5%,
// franquiciado 60/40, socios 60/40 y tres socios a 33.3%.
func testDistributionConfig() finance.DistributionConfig {
	return finance.DistributionConfig{
		LocalPercent:        decimal.NewFromInt(50),
		DistributionPercent: decimal.NewFromInt(50),
		HeadBarberPercent:   decimal.NewFromInt(5),
		FranchiseePercent:   decimal.NewFromInt(60),
		PartnersPoolPercent: decimal.NewFromInt(40),
		PartnersPercent:     decimal.NewFromInt(60),
		PlantPercent:        decimal.NewFromInt(40),
		Partners: []finance.PartnerShare{
			{Name: "Engel", Percent: decimal.NewFromFloat(33.3)},
			{Name: "Roy", Percent: decimal.NewFromFloat(33.3)},
			{Name: "Katherine", Percent: decimal.NewFromFloat(33.3)},
		},
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Ejemplo de punta a punta: sucursal con ganancia neta de $1000
// ──────────────────────────────────────────────────────────────────────────────

func TestDistribute_Sucursal1000(t *testing.T) {
	b, err := finance.Distribute(dec("1000"), entity.KindStandardBranch, testDistributionConfig())
	require.NoError(t, err)

	assert.True(t, dec("500").Equal(b.Local), "local debe ser $500, fue %s", b.Local)
	assert.True(t, dec("25").Equal(b.HeadBarber), "encargado debe ser $25, fue %s", b.HeadBarber)
	assert.True(t, dec("475").Equal(b.BranchNet), "neto de sede debe ser $475, fue %s", b.BranchNet)
	assert.True(t, dec("500").Equal(b.Distribution))
	assert.True(t, dec("300").Equal(b.Franchisee), "franquiciado debe ser $300, fue %s", b.Franchisee)
	assert.True(t, dec("200").Equal(b.PartnersPool), "pozo de socios debe ser $200, fue %s", b.PartnersPool)
	assert.True(t, dec("120").Equal(b.PartnersTotal), "total socios debe ser $120, fue %s", b.PartnersTotal)
	assert.True(t, dec("80").Equal(b.Plant), "planta debe ser $80, fue %s", b.Plant)

	require.Len(t, b.Partners, 3)
	for _, p := range b.Partners {
		assert.True(t, dec("39.96").Equal(p.Amount), "cada socio al 33.3%% recibe $39.96, %s recibió %s", p.Name, p.Amount)
	}
	// 33.3×3 = 99.9%: queda 0.1% del total de socios sin asignar.
	assert.True(t, dec("0.12").Equal(b.Unallocated), "residuo sin asignar debe ser $0.12, fue %s", b.Unallocated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante: las hojas suman la ganancia neta
// ──────────────────────────────────────────────────────────────────────────────

func TestDistribute_HojasSumanGananciaNeta(t *testing.T) {
	casos := []struct {
		nombre    string
		netProfit string
		kind      entity.LocationKind
	}{
		{"sucursal positiva", "1000", entity.KindStandardBranch},
		{"sucursal secundaria positiva", "777.77", entity.KindSecondaryBranch},
		{"sucursal negativa", "-1000", entity.KindStandardBranch},
		{"sucursal cero", "0", entity.KindStandardBranch},
		{"planta positiva", "1000", entity.KindCentralPlant},
		{"planta negativa", "-432.10", entity.KindCentralPlant},
		{"planta cero", "0", entity.KindCentralPlant},
		{"monto con centavos", "123.45", entity.KindSecondaryBranch},
	}
	cfg := testDistributionConfig()
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			np := dec(c.netProfit)
			b, err := finance.Distribute(np, c.kind, cfg)
			require.NoError(t, err)
			assert.True(t, np.Equal(b.LeafTotal()),
				"las hojas deben sumar exactamente la ganancia neta: esperado %s, obtenido %s", np, b.LeafTotal())
		})
	}
}

func TestDistribute_PerdidaPropagaSigno(t *testing.T) {
	b, err := finance.Distribute(dec("-1000"), entity.KindStandardBranch, testDistributionConfig())
	require.NoError(t, err)

	hojas := []decimal.Decimal{b.HeadBarber, b.BranchNet, b.Franchisee, b.Plant, b.Unallocated}
	for _, p := range b.Partners {
		hojas = append(hojas, p.Amount)
	}
	for i, h := range hojas {
		assert.True(t, h.LessThanOrEqual(decimal.Zero),
			"con pérdida, ninguna hoja puede ser positiva (hoja %d = %s)", i, h)
	}
	assert.True(t, dec("-1000").Equal(b.LeafTotal()))
}

func TestDistribute_CeroProduceCeroEnTodo(t *testing.T) {
	b, err := finance.Distribute(decimal.Zero, entity.KindStandardBranch, testDistributionConfig())
	require.NoError(t, err)
	assert.True(t, b.Local.IsZero())
	assert.True(t, b.HeadBarber.IsZero())
	assert.True(t, b.Franchisee.IsZero())
	assert.True(t, b.Plant.IsZero())
	assert.True(t, b.Unallocated.IsZero())
	for _, p := range b.Partners {
		assert.True(t, p.Amount.IsZero(), "socio %s debe recibir exactamente 0", p.Name)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Planta: sin franquiciado ni encargado
// ──────────────────────────────────────────────────────────────────────────────

func TestDistribute_PlantaRepartoDirectoASocios(t *testing.T) {
	b, err := finance.Distribute(dec("1000"), entity.KindCentralPlant, testDistributionConfig())
	require.NoError(t, err)

	assert.True(t, dec("500").Equal(b.Local), "la parte local de la planta no se subdivide")
	assert.True(t, b.HeadBarber.IsZero(), "la planta no tiene encargado")
	assert.True(t, b.Franchisee.IsZero(), "la planta no tiene franquiciado")
	assert.True(t, b.Plant.IsZero(), "el pozo completo va a los socios, sin sub-split 60/40")
	assert.True(t, dec("500").Equal(b.PartnersTotal))
	require.Len(t, b.Partners, 3)
	// 500 × 33.3% = 166.5 por socio; residuo 0.5
	for _, p := range b.Partners {
		assert.True(t, dec("166.5").Equal(p.Amount), "socio %s: esperado $166.50, fue %s", p.Name, p.Amount)
	}
	assert.True(t, dec("0.5").Equal(b.Unallocated))
}

// ──────────────────────────────────────────────────────────────────────────────
// Configuración de nómina
// ──────────────────────────────────────────────────────────────────────────────

func TestDistribute_NominaQueSuma100NoDejaResiduo(t *testing.T) {
	cfg := testDistributionConfig()
	cfg.Partners = []finance.PartnerShare{
		{Name: "A", Percent: decimal.NewFromInt(50)},
		{Name: "B", Percent: decimal.NewFromInt(30)},
		{Name: "C", Percent: decimal.NewFromInt(20)},
	}
	b, err := finance.Distribute(dec("1000"), entity.KindStandardBranch, cfg)
	require.NoError(t, err)
	assert.True(t, b.Unallocated.IsZero(), "con porcentajes que suman 100 no debe quedar residuo, quedó %s", b.Unallocated)
}

func TestDistribute_TipoDeSedeDesconocidoFallaRapido(t *testing.T) {
	_, err := finance.Distribute(dec("1000"), entity.LocationKind("bodega"), testDistributionConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownLocationKind,
		"un tipo de sede desconocido debe rechazarse, nunca calcular como sucursal por defecto")
}
