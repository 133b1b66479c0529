package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una nota de entrega.
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusInTransit = "in_transit"
	DeliveryStatusDelivered = "delivered"
)

// DeliveryLine es una línea de la nota de entrega.
type DeliveryLine struct {
	ProductName string
	SKU         string
	Batch       string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// DeliveryNote representa una entrega de productos a un cliente o clínica.
type DeliveryNote struct {
	ID         string
	Number     string // ej. DN-2026-0001
	Customer   string
	Address    string
	Date       time.Time
	Status     string
	Lines      []DeliveryLine
	NetTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	History    []StatusChange
	Courier    string // opcional
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
