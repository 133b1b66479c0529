package memory

import (
	"sync"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
)

// SettingsRepository configuración única de la farmacia, en memoria.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings entity.Settings
}

// NewSettingsRepository crea el repositorio con la configuración inicial.
func NewSettingsRepository(initial entity.Settings) *SettingsRepository {
	return &SettingsRepository{settings: initial}
}

// Get devuelve una copia de la configuración actual.
func (r *SettingsRepository) Get() (*entity.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := r.settings
	return &cp, nil
}

// Update reemplaza la configuración.
func (r *SettingsRepository) Update(settings *entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = *settings
	return nil
}
