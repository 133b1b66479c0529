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

// deliveryStatusOrder transiciones válidas de una entrega.
var deliveryStatusOrder = []string{
	entity.DeliveryStatusPending, entity.DeliveryStatusInTransit, entity.DeliveryStatusDelivered,
}

// DeliveryUseCase casos de uso de notas de entrega.
type DeliveryUseCase struct {
	repo repository.DeliveryRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(repo repository.DeliveryRepository) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo}
}

// Create crea una nota de entrega en pending con totales recalculados.
func (uc *DeliveryUseCase) Create(in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	lines := make([]entity.DeliveryLine, 0, len(in.Lines))
	net := decimal.Zero
	for _, l := range in.Lines {
		if !l.Quantity.GreaterThan(decimal.Zero) || l.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		subtotal := l.Quantity.Mul(l.UnitPrice)
		net = net.Add(subtotal)
		lines = append(lines, entity.DeliveryLine{
			ProductName: l.ProductName,
			SKU:         l.SKU,
			Batch:       l.Batch,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    subtotal,
		})
	}

	count, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	note := &entity.DeliveryNote{
		ID:         uuid.New().String(),
		Number:     fmt.Sprintf("DN-%d-%04d", now.Year(), count+1),
		Customer:   in.Customer,
		Address:    in.Address,
		Date:       date,
		Status:     entity.DeliveryStatusPending,
		Lines:      lines,
		NetTotal:   net.Round(2),
		GrandTotal: net.Round(2),
		Courier:    in.Courier,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(note); err != nil {
		return nil, err
	}
	return toDeliveryResponse(note), nil
}

// GetByID obtiene una nota de entrega por ID. nil sin error si no existe.
func (uc *DeliveryUseCase) GetByID(id string) (*dto.DeliveryResponse, error) {
	note, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	return toDeliveryResponse(note), nil
}

// List devuelve el listado paginado según el filtro.
func (uc *DeliveryUseCase) List(filter repository.DeliveryFilter, limit, offset int) (*dto.DeliveryListResponse, error) {
	notes, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryResponse, 0, len(notes))
	for _, n := range notes {
		items = append(items, *toDeliveryResponse(n))
	}
	return &dto.DeliveryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus transiciona pending→in_transit→delivered registrando la transición.
func (uc *DeliveryUseCase) UpdateStatus(id, status, by string) (*dto.DeliveryResponse, error) {
	note, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	if !canTransition(deliveryStatusOrder, note.Status, status) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	note.History = append(note.History, entity.StatusChange{
		From: note.Status, To: status, By: by, Timestamp: now,
	})
	note.Status = status
	note.UpdatedAt = now
	if err := uc.repo.Update(note); err != nil {
		return nil, err
	}
	return toDeliveryResponse(note), nil
}

func toDeliveryResponse(n *entity.DeliveryNote) *dto.DeliveryResponse {
	lines := make([]dto.DeliveryLineResponse, 0, len(n.Lines))
	for _, l := range n.Lines {
		lines = append(lines, dto.DeliveryLineResponse{
			ProductName: l.ProductName,
			SKU:         l.SKU,
			Batch:       l.Batch,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	return &dto.DeliveryResponse{
		ID:         n.ID,
		Number:     n.Number,
		Customer:   n.Customer,
		Address:    orPlaceholder(n.Address, NotSpecified),
		Date:       n.Date,
		Status:     n.Status,
		Lines:      lines,
		NetTotal:   n.NetTotal,
		GrandTotal: n.GrandTotal,
		History:    toHistoryResponse(n.History),
		Courier:    orPlaceholder(n.Courier, NotAssigned),
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}
