package dto

import "time"

// UpdateSettingsRequest entrada para actualizar la configuración de la farmacia.
type UpdateSettingsRequest struct {
	PharmacyName    string `json:"pharmacy_name" validate:"omitempty,min=1,max=200"`
	Address         string `json:"address" validate:"omitempty,max=300"`
	Phone           string `json:"phone" validate:"omitempty,max=50"`
	Email           string `json:"email" validate:"omitempty,email"`
	TaxID           string `json:"tax_id" validate:"omitempty,max=50"`
	AutoRefreshSecs int    `json:"auto_refresh_secs" validate:"omitempty,min=0,max=3600"`
	QuietHoursFrom  string `json:"quiet_hours_from" validate:"omitempty,len=5"`
	QuietHoursTo    string `json:"quiet_hours_to" validate:"omitempty,len=5"`
	LowStockAlerts  *bool  `json:"low_stock_alerts"`
	ExpiryAlerts    *bool  `json:"expiry_alerts"`
}

// SettingsResponse salida de la configuración.
type SettingsResponse struct {
	PharmacyName    string    `json:"pharmacy_name"`
	Address         string    `json:"address"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	TaxID           string    `json:"tax_id"`
	AutoRefreshSecs int       `json:"auto_refresh_secs"`
	QuietHoursFrom  string    `json:"quiet_hours_from"`
	QuietHoursTo    string    `json:"quiet_hours_to"`
	LowStockAlerts  bool      `json:"low_stock_alerts"`
	ExpiryAlerts    bool      `json:"expiry_alerts"`
	UpdatedAt       time.Time `json:"updated_at"`
	UpdatedBy       string    `json:"updated_by"`
}
