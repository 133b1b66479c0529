package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRangeRequest rango de fechas para reportes. Vacío = todo el histórico.
type ReportRangeRequest struct {
	From time.Time `query:"from"`
	To   time.Time `query:"to"`
}

// OperationsReportDTO reporte operativo agregado sobre el rango.
type OperationsReportDTO struct {
	From               time.Time       `json:"from"`
	To                 time.Time       `json:"to"`
	GRNCount           int             `json:"grn_count"`
	GRNTotal           decimal.Decimal `json:"grn_total"`
	DeliveryCount      int             `json:"delivery_count"`
	DeliveryTotal      decimal.Decimal `json:"delivery_total"`
	ConsultationCount  int             `json:"consultation_count"`
	CompletedConsults  int             `json:"completed_consultations"`
	CancelledConsults  int             `json:"cancelled_consultations"`
	InventoryItemCount int             `json:"inventory_item_count"`
	StockValue         decimal.Decimal `json:"stock_value"`
}
