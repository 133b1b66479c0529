package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un producto del inventario de la farmacia veterinaria.
// Stock se ajusta vía el caso de uso de inventario; nunca puede quedar negativo.
type InventoryItem struct {
	ID           string
	SKU          string // código único
	Name         string
	Category     string // antibiotic, antiparasitic, vaccine, supplement, ...
	Batch        string
	ExpiryDate   time.Time
	Stock        decimal.Decimal
	ReorderLevel decimal.Decimal // por debajo de este nivel el ítem aparece como low stock
	UnitPrice    decimal.Decimal
	Supplier     string // opcional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock informa si el stock está en o por debajo del nivel de reorden.
func (i *InventoryItem) LowStock() bool {
	return i.Stock.LessThanOrEqual(i.ReorderLevel)
}

// ExpiresWithin informa si el ítem vence dentro de la ventana indicada a partir de now.
func (i *InventoryItem) ExpiresWithin(now time.Time, window time.Duration) bool {
	if i.ExpiryDate.IsZero() {
		return false
	}
	return i.ExpiryDate.Before(now.Add(window))
}
