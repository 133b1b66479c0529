// Package reports agrega los datos operativos para el módulo de reportes y
// produce los documentos PDF de GRN y entregas.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// ReportsUseCase reportes agregados sobre un rango de fechas.
type ReportsUseCase struct {
	grnRepo          repository.GRNRepository
	deliveryRepo     repository.DeliveryRepository
	inventoryRepo    repository.InventoryRepository
	consultationRepo repository.ConsultationRepository
	pdfGenerator     DocumentPDFGenerator
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	grnRepo repository.GRNRepository,
	deliveryRepo repository.DeliveryRepository,
	inventoryRepo repository.InventoryRepository,
	consultationRepo repository.ConsultationRepository,
	pdfGenerator DocumentPDFGenerator,
) *ReportsUseCase {
	return &ReportsUseCase{
		grnRepo:          grnRepo,
		deliveryRepo:     deliveryRepo,
		inventoryRepo:    inventoryRepo,
		consultationRepo: consultationRepo,
		pdfGenerator:     pdfGenerator,
	}
}

// Operations construye el reporte operativo del rango [from, to].
// Rango vacío = todo el histórico.
func (uc *ReportsUseCase) Operations(from, to time.Time) (*dto.OperationsReportDTO, error) {
	grns, err := uc.grnRepo.List(repository.GRNFilter{From: from, To: to}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("reports: grns: %w", err)
	}
	grnTotal := decimal.Zero
	for _, g := range grns {
		grnTotal = grnTotal.Add(g.GrandTotal)
	}

	deliveries, err := uc.deliveryRepo.List(repository.DeliveryFilter{From: from, To: to}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("reports: entregas: %w", err)
	}
	deliveryTotal := decimal.Zero
	for _, d := range deliveries {
		deliveryTotal = deliveryTotal.Add(d.GrandTotal)
	}

	consultations, err := uc.consultationRepo.List(repository.ConsultationFilter{From: from, To: to}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("reports: consultas: %w", err)
	}
	var completed, cancelled int
	for _, c := range consultations {
		switch c.Status {
		case entity.ConsultationStatusCompleted:
			completed++
		case entity.ConsultationStatusCancelled:
			cancelled++
		}
	}

	items, err := uc.inventoryRepo.All()
	if err != nil {
		return nil, fmt.Errorf("reports: inventario: %w", err)
	}
	stockValue := decimal.Zero
	for _, i := range items {
		stockValue = stockValue.Add(i.Stock.Mul(i.UnitPrice))
	}

	return &dto.OperationsReportDTO{
		From:               from,
		To:                 to,
		GRNCount:           len(grns),
		GRNTotal:           grnTotal.Round(2),
		DeliveryCount:      len(deliveries),
		DeliveryTotal:      deliveryTotal.Round(2),
		ConsultationCount:  len(consultations),
		CompletedConsults:  completed,
		CancelledConsults:  cancelled,
		InventoryItemCount: len(items),
		StockValue:         stockValue.Round(2),
	}, nil
}

// GRNDocument genera el PDF de una nota de entrada.
// Devuelve el nombre de descarga y los bytes del documento.
func (uc *ReportsUseCase) GRNDocument(ctx context.Context, id string) (string, []byte, error) {
	grn, err := uc.grnRepo.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if grn == nil {
		return "", nil, domain.ErrNotFound
	}
	data, err := uc.pdfGenerator.GenerateGRNPDF(ctx, grn)
	if err != nil {
		return "", nil, fmt.Errorf("reports: pdf grn: %w", err)
	}
	return grn.Number + ".pdf", data, nil
}

// DeliveryDocument genera el PDF de una nota de entrega.
func (uc *ReportsUseCase) DeliveryDocument(ctx context.Context, id string) (string, []byte, error) {
	note, err := uc.deliveryRepo.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if note == nil {
		return "", nil, domain.ErrNotFound
	}
	data, err := uc.pdfGenerator.GenerateDeliveryPDF(ctx, note)
	if err != nil {
		return "", nil, fmt.Errorf("reports: pdf entrega: %w", err)
	}
	return note.Number + ".pdf", data, nil
}
