package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction una venta completada. Inmutable una vez creada; EndTime es el
// timestamp que usan todos los filtros por período.
type Transaction struct {
	ID              string
	LocationID      string
	CustomerID      string
	CustomerName    string
	BarberID        string
	Items           []TicketItem
	TotalAmount     decimal.Decimal
	PaymentMethod   string // "Efectivo USD", "Efectivo BS", "Tarjeta", "Pago Móvil", "Transferencia"
	ReferenceNumber string // referencia de pago móvil / transferencia
	StartTime       time.Time
	EndTime         time.Time
	RecordedBy      string
}
