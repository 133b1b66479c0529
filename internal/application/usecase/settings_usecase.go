package usecase

import (
	"time"

	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// SettingsUseCase lectura y actualización de la configuración de la farmacia.
// AutoRefresh y QuietHours solo se almacenan; ningún scheduler los consume.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración actual.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		PharmacyName:    s.PharmacyName,
		Address:         s.Address,
		Phone:           s.Phone,
		Email:           s.Email,
		TaxID:           s.TaxID,
		AutoRefreshSecs: s.AutoRefreshSecs,
		QuietHoursFrom:  s.QuietHoursFrom,
		QuietHoursTo:    s.QuietHoursTo,
		LowStockAlerts:  s.LowStockAlerts,
		ExpiryAlerts:    s.ExpiryAlerts,
		UpdatedAt:       s.UpdatedAt,
		UpdatedBy:       s.UpdatedBy,
	}, nil
}

// Update aplica los campos presentes del request y registra quién actualizó.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest, by string) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if in.PharmacyName != "" {
		s.PharmacyName = in.PharmacyName
	}
	if in.Address != "" {
		s.Address = in.Address
	}
	if in.Phone != "" {
		s.Phone = in.Phone
	}
	if in.Email != "" {
		s.Email = in.Email
	}
	if in.TaxID != "" {
		s.TaxID = in.TaxID
	}
	if in.AutoRefreshSecs > 0 {
		s.AutoRefreshSecs = in.AutoRefreshSecs
	}
	if in.QuietHoursFrom != "" {
		s.QuietHoursFrom = in.QuietHoursFrom
	}
	if in.QuietHoursTo != "" {
		s.QuietHoursTo = in.QuietHoursTo
	}
	if in.LowStockAlerts != nil {
		s.LowStockAlerts = *in.LowStockAlerts
	}
	if in.ExpiryAlerts != nil {
		s.ExpiryAlerts = *in.ExpiryAlerts
	}
	s.UpdatedAt = time.Now()
	s.UpdatedBy = by
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return uc.Get()
}
