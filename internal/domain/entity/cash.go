package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyClose snapshot del cierre de caja de un día para una sede.
// Una vez registrado no se modifica; el día queda cerrado.
type DailyClose struct {
	ID               string
	LocationID       string
	Date             time.Time // día del cierre (00:00 local)
	TotalSales       decimal.Decimal
	TotalOtherIncome decimal.Decimal
	TotalExpenses    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	ExpectedCash     decimal.Decimal // ventas + otros ingresos - gastos - retiros
	CountedCash      decimal.Decimal // efectivo contado al cerrar; cero en cierres automáticos
	Difference       decimal.Decimal // CountedCash - ExpectedCash
	TransactionCount int
	Notes            string
	Automatic        bool   // cierre disparado por el scheduler
	ClosedBy         string // user ID, o "scheduler" en cierres automáticos
	CreatedAt        time.Time
}

// Withdrawal un retiro de efectivo de la caja.
type Withdrawal struct {
	ID           string
	LocationID   string
	Amount       decimal.Decimal
	Reason       string
	Timestamp    time.Time
	AuthorizedBy string
}
