package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWithdrawalRequest registra un retiro de caja.
type CreateWithdrawalRequest struct {
	LocationID string          `json:"location_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
}

// WithdrawalResponse un retiro de caja.
type WithdrawalResponse struct {
	ID         string          `json:"id"`
	LocationID string          `json:"location_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	Date       time.Time       `json:"date"`
}

// WithdrawalListResponse retiros del día con su total.
type WithdrawalListResponse struct {
	Items []WithdrawalResponse `json:"items"`
	Total decimal.Decimal      `json:"total"`
}

// PaymentMethodTotal ingreso acumulado por método de pago. Transactions solo
// viene poblado en el resumen de caja; el dashboard entrega solo los agregados.
type PaymentMethodTotal struct {
	PaymentMethod    string           `json:"payment_method"`
	Total            decimal.Decimal  `json:"total"`
	TransactionCount int              `json:"transaction_count"`
	Transactions     []TransactionRef `json:"transactions,omitempty"`
}

// TransactionRef referencia compacta a una venta dentro del resumen de caja.
type TransactionRef struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	BarberID     string          `json:"barber_id"`
	Total        decimal.Decimal `json:"total"`
	EndTime      time.Time       `json:"end_time"`
}

// CashRegisterSummaryResponse estado de caja del día en curso.
type CashRegisterSummaryResponse struct {
	LocationID       string               `json:"location_id"`
	Date             string               `json:"date"`
	TotalSales       decimal.Decimal      `json:"total_sales"`
	TotalOtherIncome decimal.Decimal      `json:"total_other_income"`
	TotalExpenses    decimal.Decimal      `json:"total_expenses"`
	TotalWithdrawals decimal.Decimal      `json:"total_withdrawals"`
	ExpectedCash     decimal.Decimal      `json:"expected_cash"`
	ByPaymentMethod  []PaymentMethodTotal `json:"by_payment_method"`
	TransactionCount int                  `json:"transaction_count"`
}

// CloseDayRequest cierra la caja del día.
type CloseDayRequest struct {
	LocationID  string          `json:"location_id"`
	CountedCash decimal.Decimal `json:"counted_cash"`
	Notes       string          `json:"notes"`
}

// DailyCloseResponse un cierre diario registrado.
type DailyCloseResponse struct {
	ID               string          `json:"id"`
	LocationID       string          `json:"location_id"`
	Date             string          `json:"date"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalOtherIncome decimal.Decimal `json:"total_other_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	ExpectedCash     decimal.Decimal `json:"expected_cash"`
	CountedCash      decimal.Decimal `json:"counted_cash"`
	Difference       decimal.Decimal `json:"difference"`
	TransactionCount int             `json:"transaction_count"`
	Notes            string          `json:"notes"`
	Automatic        bool            `json:"automatic"`
	ClosedBy         string          `json:"closed_by"`
	ClosedAt         time.Time       `json:"closed_at"`
}

// DailyCloseListResponse historial de cierres.
type DailyCloseListResponse struct {
	Items []DailyCloseResponse `json:"items"`
}
