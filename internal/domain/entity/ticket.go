package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ítem dentro de un ticket.
const (
	ItemTypeService = "service"
	ItemTypeProduct = "product"
)

// TicketItem línea de un ticket o transacción. Category clasifica el ítem en
// los buckets de ingreso y decide si cuenta para la comisión del barbero.
// Los tags JSON permiten guardar las líneas de un ticket activo como JSONB.
type TicketItem struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Type     string          `json:"type"` // "service" | "product"
	Category string          `json:"category"`
}

// Subtotal precio por cantidad de la línea.
func (i TicketItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ActiveTicket un servicio en curso en el POS. Se convierte en Transaction al
// cobrarse; nunca se persiste como venta.
type ActiveTicket struct {
	ID           string
	LocationID   string
	CustomerID   string // vacío para clientes de paso
	CustomerName string
	BarberID     string
	Items        []TicketItem
	TotalAmount  decimal.Decimal
	StartTime    time.Time
}

// RecalcTotal recalcula TotalAmount desde las líneas.
func (t *ActiveTicket) RecalcTotal() {
	total := decimal.Zero
	for _, it := range t.Items {
		total = total.Add(it.Subtotal())
	}
	t.TotalAmount = total
}
