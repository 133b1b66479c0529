package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
)

// expiryWindow ventana de "vence pronto" para los listados y el dashboard.
const expiryWindow = 90 * 24 * time.Hour

// InventoryUseCase casos de uso del inventario de la farmacia.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create crea un ítem. Devuelve ErrDuplicate si el SKU ya existe.
func (uc *InventoryUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Stock.LessThan(decimal.Zero) || in.ReorderLevel.LessThan(decimal.Zero) || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Category:     in.Category,
		Batch:        in.Batch,
		ExpiryDate:   in.ExpiryDate,
		Stock:        in.Stock,
		ReorderLevel: in.ReorderLevel,
		UnitPrice:    in.UnitPrice,
		Supplier:     in.Supplier,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem por ID. nil sin error si no existe.
func (uc *InventoryUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List devuelve el listado paginado según el filtro.
func (uc *InventoryUseCase) List(filter repository.InventoryFilter, limit, offset int) (*dto.ItemListResponse, error) {
	items, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, *toItemResponse(i))
	}
	return &dto.ItemListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AdjustStock suma o resta stock. El resultado nunca baja de cero:
// ErrInsufficientStock si el delta negativo excede el stock actual.
func (uc *InventoryUseCase) AdjustStock(id string, in dto.AdjustStockRequest) (*dto.ItemResponse, error) {
	if in.Delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	newStock := item.Stock.Add(in.Delta)
	if newStock.LessThan(decimal.Zero) {
		return nil, domain.ErrInsufficientStock
	}
	item.Stock = newStock
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// ExpiringSoon lista los ítems que vencen dentro de la ventana de 90 días.
func (uc *InventoryUseCase) ExpiringSoon() ([]dto.ItemResponse, error) {
	items, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.ItemResponse, 0)
	for _, i := range items {
		if i.ExpiresWithin(now, expiryWindow) {
			out = append(out, *toItemResponse(i))
		}
	}
	return out, nil
}

func toItemResponse(i *entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           i.ID,
		SKU:          i.SKU,
		Name:         i.Name,
		Category:     i.Category,
		Batch:        i.Batch,
		ExpiryDate:   i.ExpiryDate,
		Stock:        i.Stock,
		ReorderLevel: i.ReorderLevel,
		UnitPrice:    i.UnitPrice,
		Supplier:     orPlaceholder(i.Supplier, NotSpecified),
		LowStock:     i.LowStock(),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
