package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenTicketRequest abre un ticket para un barbero.
type OpenTicketRequest struct {
	LocationID   string `json:"location_id"`
	BarberID     string `json:"barber_id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
}

// AddItemRequest agrega una línea al ticket.
type AddItemRequest struct {
	ItemType string          `json:"item_type"` // service | product
	ItemID   string          `json:"item_id"`
	Quantity int             `json:"quantity"`
	Price    *decimal.Decimal `json:"price"` // override opcional (cortesías)
}

// TicketItemResponse una línea del ticket.
type TicketItemResponse struct {
	ItemType string          `json:"item_type"`
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// TicketResponse estado actual de un ticket abierto.
type TicketResponse struct {
	ID           string               `json:"id"`
	LocationID   string               `json:"location_id"`
	BarberID     string               `json:"barber_id"`
	CustomerID   string               `json:"customer_id,omitempty"`
	CustomerName string               `json:"customer_name"`
	Items        []TicketItemResponse `json:"items"`
	Total        decimal.Decimal      `json:"total"`
	StartTime    time.Time            `json:"start_time"`
}

// TicketListResponse tickets abiertos de una sede.
type TicketListResponse struct {
	Items []TicketResponse `json:"items"`
}

// FinalizeTicketRequest cierra el ticket cobrando.
type FinalizeTicketRequest struct {
	PaymentMethod   string `json:"payment_method"`
	ReferenceNumber string `json:"reference_number"` // pago móvil / transferencia
}

// TransactionResponse transacción registrada al finalizar.
type TransactionResponse struct {
	ID              string               `json:"id"`
	LocationID      string               `json:"location_id"`
	BarberID        string               `json:"barber_id"`
	CustomerName    string               `json:"customer_name"`
	Items           []TicketItemResponse `json:"items"`
	Total           decimal.Decimal      `json:"total"`
	PaymentMethod   string               `json:"payment_method"`
	ReferenceNumber string               `json:"reference_number,omitempty"`
	StartTime       time.Time            `json:"start_time"`
	EndTime         time.Time            `json:"end_time"`
}

// TransactionListResponse transacciones de un período.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total decimal.Decimal       `json:"total"`
}

// QueueResponse orden de turnos de barberos en una sede.
type QueueResponse struct {
	LocationID string   `json:"location_id"`
	BarberIDs  []string `json:"barber_ids"`
}

// QueueUpdateRequest reordena o agrega barberos a la cola.
type QueueUpdateRequest struct {
	BarberIDs []string `json:"barber_ids"`
}
