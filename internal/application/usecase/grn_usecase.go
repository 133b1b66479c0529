package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// grnStatusOrder transiciones válidas, solo hacia delante y sin saltos.
var grnStatusOrder = []string{
	entity.GRNStatusDraft, entity.GRNStatusReceived, entity.GRNStatusVerified,
}

// GRNUseCase casos de uso de notas de entrada de mercancía.
// Los totales siempre se recalculan en el servidor a partir de las líneas.
type GRNUseCase struct {
	repo repository.GRNRepository
}

// NewGRNUseCase construye el caso de uso.
func NewGRNUseCase(repo repository.GRNRepository) *GRNUseCase {
	return &GRNUseCase{repo: repo}
}

// Create crea una GRN en draft. Subtotal por línea = cantidad * costo unitario;
// NetTotal = Σ subtotales; TaxTotal = Σ subtotal * tasa; GrandTotal = neto + impuesto.
func (uc *GRNUseCase) Create(in dto.CreateGRNRequest, createdBy string) (*dto.GRNResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	lines := make([]entity.GRNLine, 0, len(in.Lines))
	net := decimal.Zero
	tax := decimal.Zero
	for _, l := range in.Lines {
		if !l.Quantity.GreaterThan(decimal.Zero) || l.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		subtotal := l.Quantity.Mul(l.UnitCost)
		net = net.Add(subtotal)
		tax = tax.Add(subtotal.Mul(l.TaxRate))
		lines = append(lines, entity.GRNLine{
			ProductName: l.ProductName,
			SKU:         l.SKU,
			Batch:       l.Batch,
			ExpiryDate:  l.ExpiryDate,
			Quantity:    l.Quantity,
			UnitCost:    l.UnitCost,
			TaxRate:     l.TaxRate,
			Subtotal:    subtotal,
		})
	}

	count, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	grn := &entity.GRN{
		ID:         uuid.New().String(),
		Number:     fmt.Sprintf("GRN-%d-%04d", now.Year(), count+1),
		Supplier:   in.Supplier,
		OrderRef:   in.OrderRef,
		Date:       date,
		Status:     entity.GRNStatusDraft,
		Lines:      lines,
		NetTotal:   net.Round(2),
		TaxTotal:   tax.Round(2),
		GrandTotal: net.Add(tax).Round(2),
		ReceivedBy: createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(grn); err != nil {
		return nil, err
	}
	return toGRNResponse(grn), nil
}

// GetByID obtiene una GRN por ID. nil sin error si no existe.
func (uc *GRNUseCase) GetByID(id string) (*dto.GRNResponse, error) {
	grn, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if grn == nil {
		return nil, nil
	}
	return toGRNResponse(grn), nil
}

// List devuelve el listado paginado de GRN según el filtro.
func (uc *GRNUseCase) List(filter repository.GRNFilter, limit, offset int) (*dto.GRNListResponse, error) {
	grns, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GRNResponse, 0, len(grns))
	for _, g := range grns {
		items = append(items, *toGRNResponse(g))
	}
	return &dto.GRNListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus transiciona draft→received→verified registrando la transición
// con marca de tiempo. Cualquier otro salto devuelve ErrInvalidTransition.
func (uc *GRNUseCase) UpdateStatus(id, status, by string) (*dto.GRNResponse, error) {
	grn, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if grn == nil {
		return nil, nil
	}
	if !canTransition(grnStatusOrder, grn.Status, status) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	grn.History = append(grn.History, entity.StatusChange{
		From: grn.Status, To: status, By: by, Timestamp: now,
	})
	grn.Status = status
	grn.UpdatedAt = now
	if err := uc.repo.Update(grn); err != nil {
		return nil, err
	}
	return toGRNResponse(grn), nil
}

func toGRNResponse(g *entity.GRN) *dto.GRNResponse {
	lines := make([]dto.GRNLineResponse, 0, len(g.Lines))
	for _, l := range g.Lines {
		lines = append(lines, dto.GRNLineResponse{
			ProductName: l.ProductName,
			SKU:         l.SKU,
			Batch:       l.Batch,
			ExpiryDate:  l.ExpiryDate,
			Quantity:    l.Quantity,
			UnitCost:    l.UnitCost,
			TaxRate:     l.TaxRate,
			Subtotal:    l.Subtotal,
		})
	}
	return &dto.GRNResponse{
		ID:         g.ID,
		Number:     g.Number,
		Supplier:   g.Supplier,
		OrderRef:   orPlaceholder(g.OrderRef, NotSpecified),
		Date:       g.Date,
		Status:     g.Status,
		Lines:      lines,
		NetTotal:   g.NetTotal,
		TaxTotal:   g.TaxTotal,
		GrandTotal: g.GrandTotal,
		History:    toHistoryResponse(g.History),
		ReceivedBy: orPlaceholder(g.ReceivedBy, NotAssigned),
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

func toHistoryResponse(history []entity.StatusChange) []dto.StatusChangeResponse {
	out := make([]dto.StatusChangeResponse, 0, len(history))
	for _, h := range history {
		out = append(out, dto.StatusChangeResponse{
			From: h.From, To: h.To, By: h.By, Timestamp: h.Timestamp,
		})
	}
	return out
}
