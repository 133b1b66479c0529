package repository

import "github.com/vetpharm/vetpharm-pro/internal/domain/entity"

// SettingsRepository define el puerto de acceso a la configuración de la farmacia.
// Hay exactamente un registro de Settings por proceso.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Update(settings *entity.Settings) error
}
