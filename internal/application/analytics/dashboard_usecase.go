// Package analytics contiene el caso de uso del Dashboard: el resumen
// operativo que ve cualquier rol al entrar a la aplicación.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

const (
	recentActivityLimit = 5
	expiryWindow        = 90 * 24 * time.Hour
)

// DashboardUseCase genera el resumen del dashboard para el rol del usuario.
//
// Fuente de datos: los repositorios read-only de cada módulo. Los quick links
// se filtran con la misma tabla de políticas que gobierna el sidebar.
type DashboardUseCase struct {
	inventoryRepo    repository.InventoryRepository
	grnRepo          repository.GRNRepository
	deliveryRepo     repository.DeliveryRepository
	consultationRepo repository.ConsultationRepository
	auditRepo        repository.AuditRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	inventoryRepo repository.InventoryRepository,
	grnRepo repository.GRNRepository,
	deliveryRepo repository.DeliveryRepository,
	consultationRepo repository.ConsultationRepository,
	auditRepo repository.AuditRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		inventoryRepo:    inventoryRepo,
		grnRepo:          grnRepo,
		deliveryRepo:     deliveryRepo,
		consultationRepo: consultationRepo,
		auditRepo:        auditRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO para el rol indicado.
//
// Tres consultas en paralelo:
//  1. métricas de inventario (totales, low stock, vencimientos, valor)
//  2. documentos abiertos (GRN, entregas, consultas)
//  3. actividad reciente (últimas 5 entradas de auditoría)
func (uc *DashboardUseCase) GetSummary(role entity.Role) (*dto.DashboardSummaryDTO, error) {
	type inventoryResult struct {
		total, lowStock, expiring int
		stockValue                decimal.Decimal
		err                       error
	}
	type documentsResult struct {
		grns, deliveries, consultations int
		err                             error
	}
	type activityResult struct {
		items []dto.RecentActivityDTO
		err   error
	}

	invCh := make(chan inventoryResult, 1)
	docsCh := make(chan documentsResult, 1)
	actCh := make(chan activityResult, 1)

	go func() {
		var r inventoryResult
		r.total, r.lowStock, r.expiring, r.stockValue, r.err = uc.inventoryMetrics()
		invCh <- r
	}()
	go func() {
		var r documentsResult
		r.grns, r.deliveries, r.consultations, r.err = uc.openDocuments()
		docsCh <- r
	}()
	go func() {
		var r activityResult
		r.items, r.err = uc.recentActivity()
		actCh <- r
	}()

	inv := <-invCh
	docs := <-docsCh
	act := <-actCh

	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de inventario: %w", inv.err)
	}
	if docs.err != nil {
		return nil, fmt.Errorf("dashboard: documentos abiertos: %w", docs.err)
	}
	if act.err != nil {
		return nil, fmt.Errorf("dashboard: actividad reciente: %w", act.err)
	}

	// Quick links: mismos módulos que el sidebar para el rol, sin el dashboard.
	var links []dto.QuickLinkDTO
	for _, m := range rbac.ModulesFor(role) {
		if m == rbac.ModuleDashboard {
			continue
		}
		links = append(links, dto.QuickLinkDTO{
			Module: string(m),
			Title:  rbac.TitleFor(m).Title,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalItems:        inv.total,
		LowStockItems:     inv.lowStock,
		ExpiringSoon:      inv.expiring,
		StockValue:        inv.stockValue.Round(2),
		PendingGRNs:       docs.grns,
		PendingDeliveries: docs.deliveries,
		OpenConsultations: docs.consultations,
		QuickLinks:        links,
		RecentActivity:    act.items,
	}, nil
}

func (uc *DashboardUseCase) inventoryMetrics() (total, lowStock, expiring int, stockValue decimal.Decimal, err error) {
	items, err := uc.inventoryRepo.All()
	if err != nil {
		return 0, 0, 0, decimal.Zero, err
	}
	now := time.Now()
	stockValue = decimal.Zero
	for _, i := range items {
		total++
		if i.LowStock() {
			lowStock++
		}
		if i.ExpiresWithin(now, expiryWindow) {
			expiring++
		}
		stockValue = stockValue.Add(i.Stock.Mul(i.UnitPrice))
	}
	return total, lowStock, expiring, stockValue, nil
}

// openDocuments cuenta GRN sin verificar, entregas sin entregar y consultas agendadas.
func (uc *DashboardUseCase) openDocuments() (grns, deliveries, consultations int, err error) {
	allGRNs, err := uc.grnRepo.List(repository.GRNFilter{}, 0, 0)
	if err != nil {
		return 0, 0, 0, err
	}
	for _, g := range allGRNs {
		if g.Status != entity.GRNStatusVerified {
			grns++
		}
	}
	allDeliveries, err := uc.deliveryRepo.List(repository.DeliveryFilter{}, 0, 0)
	if err != nil {
		return 0, 0, 0, err
	}
	for _, d := range allDeliveries {
		if d.Status != entity.DeliveryStatusDelivered {
			deliveries++
		}
	}
	open, err := uc.consultationRepo.List(repository.ConsultationFilter{
		Status: entity.ConsultationStatusScheduled,
	}, 0, 0)
	if err != nil {
		return 0, 0, 0, err
	}
	return grns, deliveries, len(open), nil
}

func (uc *DashboardUseCase) recentActivity() ([]dto.RecentActivityDTO, error) {
	logs, err := uc.auditRepo.List(repository.AuditFilter{}, recentActivityLimit, 0)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecentActivityDTO, 0, len(logs))
	for _, l := range logs {
		items = append(items, dto.RecentActivityDTO{
			Action:  l.Action,
			Module:  l.Module,
			User:    l.User,
			Details: l.Details,
		})
	}
	return items, nil
}
