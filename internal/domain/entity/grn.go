package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una nota de entrada de mercancía (GRN).
const (
	GRNStatusDraft    = "draft"    // creada, pendiente de recepción física
	GRNStatusReceived = "received" // mercancía recibida en bodega
	GRNStatusVerified = "verified" // conteo y lotes verificados
)

// GRNLine es una línea de la nota de entrada.
type GRNLine struct {
	ProductName string
	SKU         string
	Batch       string
	ExpiryDate  time.Time
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	TaxRate     decimal.Decimal // 0, 0.05, 0.19
	Subtotal    decimal.Decimal // Quantity * UnitCost, sin impuesto
}

// StatusChange registra una transición de estado con marca de tiempo.
type StatusChange struct {
	From      string
	To        string
	By        string // nombre del usuario que ejecutó la transición
	Timestamp time.Time
}

// GRN representa una nota de entrada de mercancía (Goods Received Note):
// el papeleo de stock entrante desde un proveedor.
type GRN struct {
	ID         string
	Number     string // consecutivo legible, ej. GRN-2026-0001
	Supplier   string
	OrderRef   string // referencia de la orden de compra, opcional
	Date       time.Time
	Status     string
	Lines      []GRNLine
	NetTotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	History    []StatusChange
	ReceivedBy string // opcional; la vista muestra un placeholder si falta
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
