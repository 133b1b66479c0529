package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GRNLineRequest línea de entrada al crear una GRN. Subtotal lo calcula el servidor.
type GRNLineRequest struct {
	ProductName string          `json:"product_name" validate:"required,min=1,max=200"`
	SKU         string          `json:"sku" validate:"required"`
	Batch       string          `json:"batch" validate:"omitempty,max=50"`
	ExpiryDate  time.Time       `json:"expiry_date"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// CreateGRNRequest entrada para crear una nota de entrada.
type CreateGRNRequest struct {
	Supplier string           `json:"supplier" validate:"required,min=1,max=200"`
	OrderRef string           `json:"order_ref" validate:"omitempty,max=50"`
	Date     time.Time        `json:"date"`
	Lines    []GRNLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateGRNStatusRequest entrada para transicionar el estado de una GRN.
type UpdateGRNStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft received verified"`
}

// GRNLineResponse línea con subtotal derivado.
type GRNLineResponse struct {
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Batch       string          `json:"batch,omitempty"`
	ExpiryDate  time.Time       `json:"expiry_date,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// StatusChangeResponse transición de estado con marca de tiempo.
type StatusChangeResponse struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	By        string    `json:"by"`
	Timestamp time.Time `json:"timestamp"`
}

// GRNResponse salida de una nota de entrada.
type GRNResponse struct {
	ID         string                 `json:"id"`
	Number     string                 `json:"number"`
	Supplier   string                 `json:"supplier"`
	OrderRef   string                 `json:"order_ref"` // "Not specified" si falta
	Date       time.Time              `json:"date"`
	Status     string                 `json:"status"`
	Lines      []GRNLineResponse      `json:"lines"`
	NetTotal   decimal.Decimal        `json:"net_total"`
	TaxTotal   decimal.Decimal        `json:"tax_total"`
	GrandTotal decimal.Decimal        `json:"grand_total"`
	History    []StatusChangeResponse `json:"history"`
	ReceivedBy string                 `json:"received_by"` // "Not assigned" si falta
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// GRNListResponse listado paginado de notas de entrada.
type GRNListResponse struct {
	Items []GRNResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
