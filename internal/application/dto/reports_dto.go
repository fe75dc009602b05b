package dto

import "github.com/shopspring/decimal"

// PartnerCutResponse corte de un socio dentro del reparto.
type PartnerCutResponse struct {
	Name    string          `json:"name"`
	Percent decimal.Decimal `json:"percent"`
	Amount  decimal.Decimal `json:"amount"`
}

// DistributionResponse árbol completo del reparto de utilidades de una
// sede. Todos los niveles se exponen para que el cliente pinte cualquier
// subconjunto sin recalcular.
type DistributionResponse struct {
	LocationID    string               `json:"location_id"`
	LocationName  string               `json:"location_name"`
	LocationKind  string               `json:"location_kind"`
	TotalIncome   decimal.Decimal      `json:"total_income"`
	TotalExpenses decimal.Decimal      `json:"total_expenses"`
	NetProfit     decimal.Decimal      `json:"net_profit"`
	Local         decimal.Decimal      `json:"local"`
	HeadBarber    decimal.Decimal      `json:"head_barber"`
	BranchNet     decimal.Decimal      `json:"branch_net"`
	Distribution  decimal.Decimal      `json:"distribution"`
	Franchisee    decimal.Decimal      `json:"franchisee"`
	PartnersPool  decimal.Decimal      `json:"partners_pool"`
	PartnersTotal decimal.Decimal      `json:"partners_total"`
	Plant         decimal.Decimal      `json:"plant"`
	Partners      []PartnerCutResponse `json:"partners"`
	Unallocated   decimal.Decimal      `json:"unallocated"`
}

// DistributionReportResponse reparto por sede más agregado global: utilidad
// neta total, corte acumulado de cada socio en todas las sedes y residuo sin
// asignar consolidado.
type DistributionReportResponse struct {
	Period    PeriodQuery            `json:"period"`
	Locations []DistributionResponse `json:"locations"`
	// TotalNetProfit suma de utilidades netas de todas las sedes.
	TotalNetProfit   decimal.Decimal      `json:"total_net_profit"`
	Partners         []PartnerCutResponse `json:"partners"`
	TotalUnallocated decimal.Decimal      `json:"total_unallocated"`
}

// CommissionReportResponse comisión semanal de un barbero.
type CommissionReportResponse struct {
	BarberID          string          `json:"barber_id"`
	BarberName        string          `json:"barber_name"`
	Role              string          `json:"role"`
	WeekStart         string          `json:"week_start"`
	WeekEnd           string          `json:"week_end"`
	WeeklyServices    int             `json:"weekly_services"`
	QualifyingRevenue decimal.Decimal `json:"qualifying_revenue"`
	Percent           decimal.Decimal `json:"percent"`
	Earned            decimal.Decimal `json:"earned"`
	NextThreshold     int             `json:"next_threshold"`
	ServicesNeeded    int             `json:"services_needed"`
	Progress          decimal.Decimal `json:"progress"`
	AtMaxTier         bool            `json:"at_max_tier"`
}

// CommissionBoardResponse comisiones de todos los barberos de la sede.
type CommissionBoardResponse struct {
	LocationID string                     `json:"location_id"`
	WeekStart  string                     `json:"week_start"`
	WeekEnd    string                     `json:"week_end"`
	Barbers    []CommissionReportResponse `json:"barbers"`
}

// BarberReportResponse producción de un barbero en un período.
type BarberReportResponse struct {
	BarberID         string          `json:"barber_id"`
	BarberName       string          `json:"barber_name"`
	Period           PeriodQuery     `json:"period"`
	ServicesCount    int             `json:"services_count"`
	ProductsCount    int             `json:"products_count"`
	ServicesRevenue  decimal.Decimal `json:"services_revenue"`
	ProductsRevenue  decimal.Decimal `json:"products_revenue"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TransactionCount int             `json:"transaction_count"`
}

// CategoryIncomeResponse ingreso agrupado por rubro.
type CategoryIncomeResponse struct {
	Bucket string          `json:"bucket"`
	Total  decimal.Decimal `json:"total"`
}

// CategoryIncomeReportResponse ingresos por rubro en un período.
type CategoryIncomeReportResponse struct {
	LocationID string                   `json:"location_id"`
	Period     PeriodQuery              `json:"period"`
	Buckets    []CategoryIncomeResponse `json:"buckets"`
	Total      decimal.Decimal          `json:"total"`
}

// ItemEarningsResponse rendimiento de un ítem del catálogo.
type ItemEarningsResponse struct {
	ItemID       string          `json:"item_id"`
	Name         string          `json:"name"`
	ItemType     string          `json:"item_type"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	Cost         decimal.Decimal `json:"cost"`
	Profit       decimal.Decimal `json:"profit"`
}

// ItemEarningsReportResponse rendimiento por ítem en un período.
type ItemEarningsReportResponse struct {
	LocationID string                 `json:"location_id"`
	Period     PeriodQuery            `json:"period"`
	Items      []ItemEarningsResponse `json:"items"`
}
