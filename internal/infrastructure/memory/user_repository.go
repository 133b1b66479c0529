// Package memory implementa los puertos de repositorio sobre mapas en memoria
// protegidos con RWMutex. No hay persistencia: un reinicio del proceso vuelve
// al seed de demostración, que es el contrato de esta aplicación.
package memory

import (
	"sort"
	"sync"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
)

// UserRepository repositorio en memoria de usuarios gestionados.
type UserRepository struct {
	mu    sync.RWMutex
	items map[string]entity.User
}

// NewUserRepository crea el repositorio, opcionalmente con usuarios seed.
func NewUserRepository(seed ...entity.User) *UserRepository {
	r := &UserRepository{items: make(map[string]entity.User)}
	for _, u := range seed {
		r.items[u.ID] = u
	}
	return r
}

// Create guarda el usuario.
func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[user.ID] = *user
	return nil
}

// GetByID devuelve una copia del usuario, o nil si no existe.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// FindByEmail devuelve el usuario con ese email, o nil.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario almacenado.
func (r *UserRepository) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[user.ID] = *user
	return nil
}

// Delete elimina el usuario.
func (r *UserRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// List devuelve los usuarios ordenados por nombre. limit 0 = sin límite.
func (r *UserRepository) List(limit, offset int) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*entity.User, 0, len(r.items))
	for _, u := range r.items {
		cp := u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), nil
}

// CountByRole cuenta los usuarios activos con el rol dado.
func (r *UserRepository) CountByRole(role entity.Role) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, u := range r.items {
		if u.Role == role && u.Status == "active" {
			n++
		}
	}
	return n, nil
}

// paginate aplica offset/limit a un slice ya ordenado. limit 0 = sin límite.
func paginate[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
