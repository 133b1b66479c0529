package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/usecase"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/domain/repository"
	"github.com/vetpharm/vetpharm-pro/internal/infrastructure/memory"
)

func itemRequest() dto.CreateItemRequest {
	return dto.CreateItemRequest{
		SKU:          "AMX-500",
		Name:         "Amoxicilina 500mg",
		Category:     "antibiotic",
		ExpiryDate:   time.Now().AddDate(1, 0, 0),
		Stock:        dec("40"),
		ReorderLevel: dec("20"),
		UnitPrice:    dec("12.50"),
	}
}

// SKU duplicado rechaza la creación.
func TestInventoryCreate_SKUDuplicado(t *testing.T) {
	uc := usecase.NewInventoryUseCase(memory.NewInventoryRepository())

	_, err := uc.Create(itemRequest())
	require.NoError(t, err)

	_, err = uc.Create(itemRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Valores negativos en stock, reorden o precio rechazan la creación.
func TestInventoryCreate_NegativosInvalidos(t *testing.T) {
	uc := usecase.NewInventoryUseCase(memory.NewInventoryRepository())

	in := itemRequest()
	in.Stock = dec("-1")
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Ajuste de stock: suma y resta; el resultado nunca queda por debajo de cero.
func TestAdjustStock(t *testing.T) {
	uc := usecase.NewInventoryUseCase(memory.NewInventoryRepository())
	created, err := uc.Create(itemRequest()) // stock 40
	require.NoError(t, err)

	out, err := uc.AdjustStock(created.ID, dto.AdjustStockRequest{Delta: dec("-15"), Reason: "venta mostrador"})
	require.NoError(t, err)
	assert.True(t, out.Stock.Equal(dec("25")), "stock: %s", out.Stock)

	// por debajo de cero
	_, err = uc.AdjustStock(created.ID, dto.AdjustStockRequest{Delta: dec("-26"), Reason: "venta"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// el fallo no alteró el stock
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, got.Stock.Equal(dec("25")))

	// hasta exactamente cero sí
	out, err = uc.AdjustStock(created.ID, dto.AdjustStockRequest{Delta: dec("-25"), Reason: "ajuste de conteo"})
	require.NoError(t, err)
	assert.True(t, out.Stock.IsZero())
}

// Delta cero no es un ajuste.
func TestAdjustStock_DeltaCero(t *testing.T) {
	uc := usecase.NewInventoryUseCase(memory.NewInventoryRepository())
	created, err := uc.Create(itemRequest())
	require.NoError(t, err)

	_, err = uc.AdjustStock(created.ID, dto.AdjustStockRequest{Delta: dec("0"), Reason: "nada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// LowStock se deriva del nivel de reorden; el filtro del listado lo usa.
func TestInventoryList_LowStock(t *testing.T) {
	uc := usecase.NewInventoryUseCase(memory.NewInventoryRepository())

	low := itemRequest()
	low.SKU = "IVM-10"
	low.Name = "Ivermectina"
	low.Stock = dec("5")
	low.ReorderLevel = dec("15")
	_, err := uc.Create(low)
	require.NoError(t, err)
	_, err = uc.Create(itemRequest()) // stock 40, reorden 20
	require.NoError(t, err)

	out, err := uc.List(repository.InventoryFilter{LowStock: true}, 0, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "IVM-10", out.Items[0].SKU)
	assert.True(t, out.Items[0].LowStock)
}

// ExpiringSoon solo incluye ítems que vencen dentro de 90 días.
func TestExpiringSoon(t *testing.T) {
	uc := usecase.NewInventoryUseCase(memory.NewInventoryRepository())

	soon := itemRequest()
	soon.SKU = "VAC-RAB"
	soon.ExpiryDate = time.Now().AddDate(0, 1, 0)
	_, err := uc.Create(soon)
	require.NoError(t, err)
	_, err = uc.Create(itemRequest()) // vence en un año
	require.NoError(t, err)

	out, err := uc.ExpiringSoon()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "VAC-RAB", out[0].SKU)
}
