package dto

import "github.com/shopspring/decimal"

// QuickLinkDTO enlace rápido del dashboard a un módulo permitido para el rol.
type QuickLinkDTO struct {
	Module string `json:"module"`
	Title  string `json:"title"`
}

// RecentActivityDTO actividad reciente mostrada en el dashboard.
type RecentActivityDTO struct {
	Action  string `json:"action"`
	Module  string `json:"module"`
	User    string `json:"user"`
	Details string `json:"details"`
}

// DashboardSummaryDTO resumen operativo del dashboard.
type DashboardSummaryDTO struct {
	TotalItems       int                 `json:"total_items"`
	LowStockItems    int                 `json:"low_stock_items"`
	ExpiringSoon     int                 `json:"expiring_soon"` // vence en <= 90 días
	StockValue       decimal.Decimal     `json:"stock_value"`
	PendingGRNs      int                 `json:"pending_grns"`
	PendingDeliveries int                `json:"pending_deliveries"`
	OpenConsultations int                `json:"open_consultations"`
	QuickLinks       []QuickLinkDTO      `json:"quick_links"`
	RecentActivity   []RecentActivityDTO `json:"recent_activity"`
}
