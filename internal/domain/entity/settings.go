package entity

import "time"

// Settings guarda el perfil de la farmacia y las preferencias de notificación.
// AutoRefresh y QuietHours se almacenan pero no alimentan ningún scheduler:
// son preferencias de presentación.
type Settings struct {
	PharmacyName    string
	Address         string
	Phone           string
	Email           string
	TaxID           string
	AutoRefreshSecs int
	QuietHoursFrom  string // "22:00"
	QuietHoursTo    string // "07:00"
	LowStockAlerts  bool
	ExpiryAlerts    bool
	UpdatedAt       time.Time
	UpdatedBy       string
}
