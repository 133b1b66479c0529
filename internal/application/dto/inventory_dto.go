package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un ítem de inventario.
type CreateItemRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=50"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Category     string          `json:"category" validate:"required,max=100"`
	Batch        string          `json:"batch" validate:"omitempty,max=50"`
	ExpiryDate   time.Time       `json:"expiry_date"`
	Stock        decimal.Decimal `json:"stock"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Supplier     string          `json:"supplier" validate:"omitempty,max=200"`
}

// AdjustStockRequest entrada para ajustar stock. Delta positivo suma, negativo resta;
// el resultado nunca puede quedar por debajo de cero.
type AdjustStockRequest struct {
	Delta  decimal.Decimal `json:"delta"`
	Reason string          `json:"reason" validate:"required,min=1,max=300"`
}

// ItemResponse salida de un ítem de inventario.
type ItemResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Batch        string          `json:"batch,omitempty"`
	ExpiryDate   time.Time       `json:"expiry_date,omitempty"`
	Stock        decimal.Decimal `json:"stock"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Supplier     string          `json:"supplier"` // "Not specified" si falta
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
