package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen financiero y operativo de una sede para un período.
type DashboardResponse struct {
	LocationID       string                   `json:"location_id"`
	Period           PeriodQuery              `json:"period"`
	TotalSales       decimal.Decimal          `json:"total_sales"`
	TotalOtherIncome decimal.Decimal          `json:"total_other_income"`
	TotalIncome      decimal.Decimal          `json:"total_income"`
	TotalExpenses    decimal.Decimal          `json:"total_expenses"`
	NetProfit        decimal.Decimal          `json:"net_profit"`
	TransactionCount int                      `json:"transaction_count"`
	ActiveServices   int                      `json:"active_services"`
	StaffCount       int                      `json:"staff_count"`
	ByPaymentMethod  []PaymentMethodTotal     `json:"by_payment_method"`
	ByBucket         []CategoryIncomeResponse `json:"by_bucket"`
}
