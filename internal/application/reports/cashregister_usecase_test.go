package reports_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/application/reports"
	"github.com/nordico/barber-api/internal/domain"
	"github.com/nordico/barber-api/internal/domain/entity"
	"github.com/nordico/barber-api/internal/domain/repository"
)

func cashTestUseCase(closes *fakeCloses, withdrawals *fakeWithdrawals) *reports.CashRegisterUseCase {
	analytics := &fakeAnalytics{
		sales:       dec("800"),
		otherIncome: dec("50"),
		expenses:    dec("120"),
		txCount:     17,
		methods: []repository.PaymentMethodIncome{
			{Method: "Efectivo USD", Total: dec("500"), TransactionCount: 10},
			{Method: "Pago Móvil", Total: dec("300"), TransactionCount: 7},
		},
	}
	transactions := &fakeTransactions{items: []*entity.Transaction{
		{ID: "tx1", LocationID: "magallanes", BarberID: "b1", CustomerName: "José Gómez",
			TotalAmount: dec("500"), PaymentMethod: "Efectivo USD", EndTime: testNow()},
		{ID: "tx2", LocationID: "magallanes", BarberID: "b2", CustomerName: "Ana Pérez",
			TotalAmount: dec("300"), PaymentMethod: "Pago Móvil", EndTime: testNow()},
	}}
	locs := &fakeLocations{locs: []*entity.Location{
		{ID: "magallanes", Name: "MAGALLANES", Kind: entity.KindStandardBranch},
	}}
	return reports.NewCashRegisterUseCase(analytics, transactions, withdrawals, closes, locs, testNow)
}

// El efectivo esperado descuenta gastos y retiros del ingreso del día.
func TestCashRegister_SummaryCalculaEfectivoEsperado(t *testing.T) {
	withdrawals := &fakeWithdrawals{items: []*entity.Withdrawal{
		{ID: "w1", LocationID: "magallanes", Amount: dec("100"), Timestamp: testNow()},
	}}
	uc := cashTestUseCase(&fakeCloses{}, withdrawals)

	resp, err := uc.Summary(context.Background(), "magallanes")
	require.NoError(t, err)

	assert.True(t, dec("800").Equal(resp.TotalSales))
	assert.True(t, dec("100").Equal(resp.TotalWithdrawals))
	// 800 + 50 − 120 − 100
	assert.True(t, dec("630").Equal(resp.ExpectedCash), "efectivo esperado debe ser $630, fue %s", resp.ExpectedCash)
	assert.Equal(t, 17, resp.TransactionCount)
	require.Len(t, resp.ByPaymentMethod, 2)
	assert.Equal(t, "Efectivo USD", resp.ByPaymentMethod[0].PaymentMethod)
}

// Cada método de pago del resumen trae su conteo y las ventas que lo componen.
func TestCashRegister_SummaryDetallaVentasPorMetodo(t *testing.T) {
	uc := cashTestUseCase(&fakeCloses{}, &fakeWithdrawals{})

	resp, err := uc.Summary(context.Background(), "magallanes")
	require.NoError(t, err)
	require.Len(t, resp.ByPaymentMethod, 2)

	efectivo := resp.ByPaymentMethod[0]
	assert.Equal(t, "Efectivo USD", efectivo.PaymentMethod)
	assert.Equal(t, 10, efectivo.TransactionCount)
	require.Len(t, efectivo.Transactions, 1)
	assert.Equal(t, "tx1", efectivo.Transactions[0].ID)
	assert.Equal(t, "José Gómez", efectivo.Transactions[0].CustomerName)
	assert.True(t, dec("500").Equal(efectivo.Transactions[0].Total))

	movil := resp.ByPaymentMethod[1]
	assert.Equal(t, 7, movil.TransactionCount)
	require.Len(t, movil.Transactions, 1)
	assert.Equal(t, "tx2", movil.Transactions[0].ID)
}

func TestCashRegister_CierreRegistraDiferencia(t *testing.T) {
	closes := &fakeCloses{}
	uc := cashTestUseCase(closes, &fakeWithdrawals{})

	resp, err := uc.Close(context.Background(), dto.CloseDayRequest{
		LocationID:  "magallanes",
		CountedCash: dec("700"),
		Notes:       "faltó vuelto",
	}, "user-1")
	require.NoError(t, err)

	// Esperado sin retiros: 800 + 50 − 120 = 730. Contado 700 → diferencia −30.
	assert.True(t, dec("730").Equal(resp.ExpectedCash))
	assert.True(t, dec("-30").Equal(resp.Difference), "la diferencia debe ser −$30, fue %s", resp.Difference)
	assert.Equal(t, "2026-08-26", resp.Date)
	assert.Equal(t, "user-1", resp.ClosedBy)
	assert.False(t, resp.Automatic)
	require.Len(t, closes.closes, 1)
}

// Un segundo cierre del mismo día falla con ErrAlreadyClosed.
func TestCashRegister_DobleCierreFalla(t *testing.T) {
	uc := cashTestUseCase(&fakeCloses{}, &fakeWithdrawals{})
	in := dto.CloseDayRequest{LocationID: "magallanes", CountedCash: dec("730")}

	_, err := uc.Close(context.Background(), in, "user-1")
	require.NoError(t, err)

	_, err = uc.Close(context.Background(), in, "user-1")
	assert.ErrorIs(t, err, domain.ErrAlreadyClosed)
}

// El cierre automático no pisa un cierre manual previo: devuelve nil sin error.
func TestCashRegister_AutoCloseRespetaCierreManual(t *testing.T) {
	closes := &fakeCloses{}
	uc := cashTestUseCase(closes, &fakeWithdrawals{})

	_, err := uc.Close(context.Background(), dto.CloseDayRequest{LocationID: "magallanes", CountedCash: dec("730")}, "user-1")
	require.NoError(t, err)

	resp, err := uc.AutoClose(context.Background(), "magallanes")
	require.NoError(t, err)
	assert.Nil(t, resp, "con el día ya cerrado, el cierre automático no hace nada")
	assert.Len(t, closes.closes, 1)
}

func TestCashRegister_AutoCloseMarcaAutomatico(t *testing.T) {
	uc := cashTestUseCase(&fakeCloses{}, &fakeWithdrawals{})

	resp, err := uc.AutoClose(context.Background(), "magallanes")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.Automatic)
	assert.Equal(t, reports.SchedulerUser, resp.ClosedBy)
	assert.True(t, resp.CountedCash.IsZero(), "el cierre automático no cuenta efectivo")
	assert.True(t, dec("-730").Equal(resp.Difference), "sin conteo, la diferencia es todo el esperado en negativo")
}

func TestCashRegister_SedeInexistente(t *testing.T) {
	uc := cashTestUseCase(&fakeCloses{}, &fakeWithdrawals{})

	_, err := uc.Close(context.Background(), dto.CloseDayRequest{LocationID: "no-existe"}, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
