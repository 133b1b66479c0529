package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// GRNRepository repositorio en memoria de notas de entrada.
type GRNRepository struct {
	mu    sync.RWMutex
	items map[string]entity.GRN
}

// NewGRNRepository crea el repositorio, opcionalmente con GRNs seed.
func NewGRNRepository(seed ...entity.GRN) *GRNRepository {
	r := &GRNRepository{items: make(map[string]entity.GRN)}
	for _, g := range seed {
		r.items[g.ID] = g
	}
	return r
}

// Create guarda la GRN.
func (r *GRNRepository) Create(grn *entity.GRN) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[grn.ID] = cloneGRN(grn)
	return nil
}

// GetByID devuelve una copia de la GRN, o nil si no existe.
func (r *GRNRepository) GetByID(id string) (*entity.GRN, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := cloneGRN(&g)
	return &cp, nil
}

// Update reemplaza la GRN almacenada.
func (r *GRNRepository) Update(grn *entity.GRN) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[grn.ID] = cloneGRN(grn)
	return nil
}

// List devuelve las GRN filtradas, más recientes primero. limit 0 = sin límite.
func (r *GRNRepository) List(filter repository.GRNFilter, limit, offset int) ([]*entity.GRN, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.GRN
	for _, g := range r.items {
		if filter.Status != "" && g.Status != filter.Status {
			continue
		}
		if filter.Supplier != "" && !strings.Contains(strings.ToLower(g.Supplier), strings.ToLower(filter.Supplier)) {
			continue
		}
		if !filter.From.IsZero() && g.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && g.Date.After(filter.To) {
			continue
		}
		cp := cloneGRN(&g)
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	return paginate(all, limit, offset), nil
}

// Count devuelve el total de GRN almacenadas.
func (r *GRNRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func cloneGRN(g *entity.GRN) entity.GRN {
	cp := *g
	cp.Lines = append([]entity.GRNLine(nil), g.Lines...)
	cp.History = append([]entity.StatusChange(nil), g.History...)
	return cp
}
