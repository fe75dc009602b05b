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

func testCommissionConfig() finance.CommissionConfig {
	return finance.CommissionConfig{
		Tiers: []finance.CommissionTier{
			{MinServices: 41, Percent: decimal.NewFromInt(65), NextThreshold: 0},
			{MinServices: 30, Percent: decimal.NewFromInt(60), NextThreshold: 41},
			{MinServices: 0, Percent: decimal.NewFromInt(55), NextThreshold: 30},
		},
		HeadBarberDefault: decimal.NewFromInt(65),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Límites de los tramos
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateCommission_LimitesDeTramo(t *testing.T) {
	casos := []struct {
		servicios int
		percent   string
	}{
		{0, "55"},
		{29, "55"},
		{30, "60"}, // límite inferior inclusivo
		{40, "60"},
		{41, "65"}, // límite inferior inclusivo
		{1000, "65"},
	}
	cfg := testCommissionConfig()
	for _, c := range casos {
		res, err := finance.CalculateCommission(entity.RoleBarber, decimal.Zero, c.servicios, decimal.Zero, cfg)
		require.NoError(t, err)
		assert.True(t, dec(c.percent).Equal(res.Percent),
			"con %d servicios el tramo debe ser %s%%, fue %s", c.servicios, c.percent, res.Percent)
	}
}

func TestCalculateCommission_ServiciosFaltantes(t *testing.T) {
	cfg := testCommissionConfig()

	res, err := finance.CalculateCommission(entity.RoleBarber, decimal.Zero, 0, decimal.Zero, cfg)
	require.NoError(t, err)
	assert.Equal(t, 30, res.ServicesNeeded, "con 0 servicios faltan 30 para el siguiente tramo")
	assert.Equal(t, 30, res.NextThreshold)
	assert.False(t, res.AtMaxTier)
	assert.True(t, res.Progress.IsZero())

	res, err = finance.CalculateCommission(entity.RoleBarber, decimal.Zero, 35, decimal.Zero, cfg)
	require.NoError(t, err)
	assert.Equal(t, 6, res.ServicesNeeded, "con 35 servicios faltan 6 para llegar a 41")

	res, err = finance.CalculateCommission(entity.RoleBarber, decimal.Zero, 41, decimal.Zero, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, res.ServicesNeeded, "en el tramo máximo no faltan servicios")
	assert.True(t, res.AtMaxTier)
	assert.True(t, dec("100").Equal(res.Progress), "en el tramo máximo el avance es 100")
}

// Ejemplo del reporte semanal: 35 servicios con $700 de ingreso calificado.
func TestCalculateCommission_Ejemplo35Servicios700(t *testing.T) {
	res, err := finance.CalculateCommission(
		entity.RoleBarber, decimal.Zero, 35, dec("700"), testCommissionConfig())
	require.NoError(t, err)

	assert.True(t, dec("60").Equal(res.Percent))
	assert.True(t, dec("420").Equal(res.Earned), "comisión: 700 × 60%% = $420, fue %s", res.Earned)
	assert.Equal(t, 6, res.ServicesNeeded)
}

// ──────────────────────────────────────────────────────────────────────────────
// Barbero encargado
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateCommission_EncargadoUsaPorcentajeFijo(t *testing.T) {
	// Con 70% configurado, el conteo semanal es irrelevante.
	res, err := finance.CalculateCommission(
		entity.RoleHeadBarber, dec("70"), 3, dec("1000"), testCommissionConfig())
	require.NoError(t, err)

	assert.True(t, dec("70").Equal(res.Percent))
	assert.True(t, dec("700").Equal(res.Earned))
	assert.True(t, res.AtMaxTier)
	assert.Equal(t, 0, res.ServicesNeeded)
	assert.True(t, dec("100").Equal(res.Progress), "el encargado siempre reporta avance máximo")
}

func TestCalculateCommission_EncargadoSinPorcentajeUsaDefault(t *testing.T) {
	res, err := finance.CalculateCommission(
		entity.RoleHeadBarber, decimal.Zero, 50, dec("200"), testCommissionConfig())
	require.NoError(t, err)

	assert.True(t, dec("65").Equal(res.Percent), "sin porcentaje configurado aplica el default de 65")
	assert.True(t, dec("130").Equal(res.Earned))
}

func TestCalculateCommission_TablaVaciaFalla(t *testing.T) {
	_, err := finance.CalculateCommission(
		entity.RoleBarber, decimal.Zero, 10, dec("100"), finance.CommissionConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Servicios calificados
// ──────────────────────────────────────────────────────────────────────────────

func TestQualifyingServices_SoloBarberiaYCantidades(t *testing.T) {
	items := []entity.TicketItem{
		{Type: entity.ItemTypeService, Category: finance.CategoryBarberia, Price: dec("15"), Quantity: 2},
		{Type: entity.ItemTypeService, Category: finance.CategoryNordico, Price: dec("30"), Quantity: 1},
		{Type: entity.ItemTypeService, Category: finance.CategoryGamerZone, Price: dec("5"), Quantity: 4}, // excluido
		{Type: entity.ItemTypeProduct, Category: "Cuidado Capilar", Price: dec("12"), Quantity: 1},        // excluido
		{Type: entity.ItemTypeProduct, Category: finance.CategorySnack, Price: dec("2"), Quantity: 3},     // excluido
	}
	count, revenue := finance.QualifyingServices(items)
	assert.Equal(t, 3, count, "cuenta cantidades de barbería y nórdico: 2+1")
	assert.True(t, dec("60").Equal(revenue), "ingreso calificado: 15×2 + 30×1 = $60, fue %s", revenue)
}

func TestClassify_BucketsCerrados(t *testing.T) {
	casos := []struct {
		item   entity.TicketItem
		bucket finance.IncomeBucket
	}{
		{entity.TicketItem{Type: entity.ItemTypeService, Category: finance.CategoryBarberia}, finance.BucketBarberService},
		{entity.TicketItem{Type: entity.ItemTypeService, Category: finance.CategoryNordico}, finance.BucketBarberService},
		{entity.TicketItem{Type: entity.ItemTypeService, Category: finance.CategoryGamerZone}, finance.BucketGamerZone},
		{entity.TicketItem{Type: entity.ItemTypeProduct, Category: finance.CategorySnack}, finance.BucketSnacks},
		{entity.TicketItem{Type: entity.ItemTypeProduct, Category: "Bebidas"}, finance.BucketProducts},
		{entity.TicketItem{Type: entity.ItemTypeProduct, Category: finance.CategoryCourtesy}, finance.BucketNone},
		{entity.TicketItem{Type: entity.ItemTypeProduct, Category: finance.CategorySnackCourtesy}, finance.BucketNone},
		{entity.TicketItem{Type: entity.ItemTypeService, Category: "categoría inventada"}, finance.BucketNone},
	}
	for _, c := range casos {
		assert.Equal(t, c.bucket, finance.Classify(c.item),
			"item tipo %q categoría %q", c.item.Type, c.item.Category)
	}
}
