package memory

import (
	"sort"
	"sync"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// ConsultationRepository repositorio en memoria de consultas veterinarias.
type ConsultationRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Consultation
}

// NewConsultationRepository crea el repositorio, opcionalmente con consultas seed.
func NewConsultationRepository(seed ...entity.Consultation) *ConsultationRepository {
	r := &ConsultationRepository{items: make(map[string]entity.Consultation)}
	for _, c := range seed {
		r.items[c.ID] = c
	}
	return r
}

// Create guarda la consulta.
func (r *ConsultationRepository) Create(consultation *entity.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[consultation.ID] = cloneConsultation(consultation)
	return nil
}

// GetByID devuelve una copia de la consulta, o nil si no existe.
func (r *ConsultationRepository) GetByID(id string) (*entity.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := cloneConsultation(&c)
	return &cp, nil
}

// Update reemplaza la consulta almacenada.
func (r *ConsultationRepository) Update(consultation *entity.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[consultation.ID] = cloneConsultation(consultation)
	return nil
}

// List devuelve las consultas filtradas, más recientes primero. limit 0 = sin límite.
func (r *ConsultationRepository) List(filter repository.ConsultationFilter, limit, offset int) ([]*entity.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.Consultation
	for _, c := range r.items {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Vet != "" && c.Vet != filter.Vet {
			continue
		}
		if !filter.From.IsZero() && c.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && c.Date.After(filter.To) {
			continue
		}
		cp := cloneConsultation(&c)
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	return paginate(all, limit, offset), nil
}

// Count devuelve el total de consultas.
func (r *ConsultationRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func cloneConsultation(c *entity.Consultation) entity.Consultation {
	cp := *c
	cp.Prescribed = append([]entity.PrescribedItem(nil), c.Prescribed...)
	cp.History = append([]entity.StatusChange(nil), c.History...)
	return cp
}
