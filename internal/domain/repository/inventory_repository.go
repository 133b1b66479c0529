package repository

import "github.com/vetpharm/vetpharm-pro/internal/domain/entity"

// InventoryFilter filtros de listado para ítems de inventario.
type InventoryFilter struct {
	Category string
	Search   string // busca en SKU y nombre
	LowStock bool
}

// InventoryRepository define el puerto de acceso al inventario.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetBySKU(sku string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	List(filter InventoryFilter, limit, offset int) ([]*entity.InventoryItem, error)
	All() ([]*entity.InventoryItem, error)
	Count() (int, error)
}
