package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// DeliveryRepository repositorio en memoria de notas de entrega.
type DeliveryRepository struct {
	mu    sync.RWMutex
	items map[string]entity.DeliveryNote
}

// NewDeliveryRepository crea el repositorio, opcionalmente con notas seed.
func NewDeliveryRepository(seed ...entity.DeliveryNote) *DeliveryRepository {
	r := &DeliveryRepository{items: make(map[string]entity.DeliveryNote)}
	for _, n := range seed {
		r.items[n.ID] = n
	}
	return r
}

// Create guarda la nota.
func (r *DeliveryRepository) Create(note *entity.DeliveryNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[note.ID] = cloneDelivery(note)
	return nil
}

// GetByID devuelve una copia de la nota, o nil si no existe.
func (r *DeliveryRepository) GetByID(id string) (*entity.DeliveryNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := cloneDelivery(&n)
	return &cp, nil
}

// Update reemplaza la nota almacenada.
func (r *DeliveryRepository) Update(note *entity.DeliveryNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[note.ID] = cloneDelivery(note)
	return nil
}

// List devuelve las notas filtradas, más recientes primero. limit 0 = sin límite.
func (r *DeliveryRepository) List(filter repository.DeliveryFilter, limit, offset int) ([]*entity.DeliveryNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.DeliveryNote
	for _, n := range r.items {
		if filter.Status != "" && n.Status != filter.Status {
			continue
		}
		if filter.Customer != "" && !strings.Contains(strings.ToLower(n.Customer), strings.ToLower(filter.Customer)) {
			continue
		}
		if !filter.From.IsZero() && n.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && n.Date.After(filter.To) {
			continue
		}
		cp := cloneDelivery(&n)
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	return paginate(all, limit, offset), nil
}

// Count devuelve el total de notas almacenadas.
func (r *DeliveryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func cloneDelivery(n *entity.DeliveryNote) entity.DeliveryNote {
	cp := *n
	cp.Lines = append([]entity.DeliveryLine(nil), n.Lines...)
	cp.History = append([]entity.StatusChange(nil), n.History...)
	return cp
}
