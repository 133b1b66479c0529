package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// InventoryRepository repositorio en memoria del inventario.
type InventoryRepository struct {
	mu    sync.RWMutex
	items map[string]entity.InventoryItem
}

// NewInventoryRepository crea el repositorio, opcionalmente con ítems seed.
func NewInventoryRepository(seed ...entity.InventoryItem) *InventoryRepository {
	r := &InventoryRepository{items: make(map[string]entity.InventoryItem)}
	for _, i := range seed {
		r.items[i.ID] = i
	}
	return r
}

// Create guarda el ítem.
func (r *InventoryRepository) Create(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = *item
	return nil
}

// GetByID devuelve una copia del ítem, o nil si no existe.
func (r *InventoryRepository) GetByID(id string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

// GetBySKU devuelve el ítem con ese SKU, o nil.
func (r *InventoryRepository) GetBySKU(sku string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, i := range r.items {
		if i.SKU == sku {
			cp := i
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el ítem almacenado.
func (r *InventoryRepository) Update(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = *item
	return nil
}

// List devuelve los ítems filtrados ordenados por nombre. limit 0 = sin límite.
func (r *InventoryRepository) List(filter repository.InventoryFilter, limit, offset int) ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.InventoryItem
	for _, i := range r.items {
		if filter.Category != "" && i.Category != filter.Category {
			continue
		}
		if filter.Search != "" {
			q := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(i.Name), q) && !strings.Contains(strings.ToLower(i.SKU), q) {
				continue
			}
		}
		if filter.LowStock && !i.LowStock() {
			continue
		}
		cp := i
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), nil
}

// All devuelve todos los ítems sin filtrar.
func (r *InventoryRepository) All() ([]*entity.InventoryItem, error) {
	return r.List(repository.InventoryFilter{}, 0, 0)
}

// Count devuelve el total de ítems.
func (r *InventoryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
