package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryLineRequest línea de entrada al crear una nota de entrega.
type DeliveryLineRequest struct {
	ProductName string          `json:"product_name" validate:"required,min=1,max=200"`
	SKU         string          `json:"sku" validate:"required"`
	Batch       string          `json:"batch" validate:"omitempty,max=50"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateDeliveryRequest entrada para crear una nota de entrega.
type CreateDeliveryRequest struct {
	Customer string                `json:"customer" validate:"required,min=1,max=200"`
	Address  string                `json:"address" validate:"omitempty,max=300"`
	Date     time.Time             `json:"date"`
	Courier  string                `json:"courier" validate:"omitempty,max=100"`
	Lines    []DeliveryLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateDeliveryStatusRequest entrada para transicionar el estado de una entrega.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_transit delivered"`
}

// DeliveryLineResponse línea con subtotal derivado.
type DeliveryLineResponse struct {
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Batch       string          `json:"batch,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// DeliveryResponse salida de una nota de entrega.
type DeliveryResponse struct {
	ID         string                 `json:"id"`
	Number     string                 `json:"number"`
	Customer   string                 `json:"customer"`
	Address    string                 `json:"address"` // "Not specified" si falta
	Date       time.Time              `json:"date"`
	Status     string                 `json:"status"`
	Lines      []DeliveryLineResponse `json:"lines"`
	NetTotal   decimal.Decimal        `json:"net_total"`
	GrandTotal decimal.Decimal        `json:"grand_total"`
	History    []StatusChangeResponse `json:"history"`
	Courier    string                 `json:"courier"` // "Not assigned" si falta
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// DeliveryListResponse listado paginado de notas de entrega.
type DeliveryListResponse struct {
	Items []DeliveryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
