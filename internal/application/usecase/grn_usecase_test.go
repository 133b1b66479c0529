package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetpharm/vetpharm-pro/internal/application/dto"
	"github.com/vetpharm/vetpharm-pro/internal/application/usecase"
	"github.com/vetpharm/vetpharm-pro/internal/domain"
	"github.com/vetpharm/vetpharm-pro/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func grnRequest() dto.CreateGRNRequest {
	return dto.CreateGRNRequest{
		Supplier: "FarmaVet S.A.",
		OrderRef: "PO-1001",
		Date:     time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		Lines: []dto.GRNLineRequest{
			{ProductName: "Amoxicilina 500mg", SKU: "AMX-500", Quantity: dec("10"), UnitCost: dec("12.50"), TaxRate: dec("0.19")},
			{ProductName: "Ivermectina 1%", SKU: "IVM-10", Quantity: dec("4"), UnitCost: dec("7.80"), TaxRate: dec("0.05")},
		},
	}
}

// Totales: subtotal por línea = cantidad * costo; neto, impuesto y total
// se derivan de las líneas y se redondean a 2 decimales.
func TestGRNCreate_TotalesDerivados(t *testing.T) {
	uc := usecase.NewGRNUseCase(memory.NewGRNRepository())

	out, err := uc.Create(grnRequest(), "Marcos Rivera")
	require.NoError(t, err)

	// 10*12.50 = 125.00 ; 4*7.80 = 31.20
	assert.True(t, out.Lines[0].Subtotal.Equal(dec("125")), "subtotal línea 1: %s", out.Lines[0].Subtotal)
	assert.True(t, out.Lines[1].Subtotal.Equal(dec("31.2")), "subtotal línea 2: %s", out.Lines[1].Subtotal)
	// neto 156.20 ; impuesto 125*0.19 + 31.20*0.05 = 23.75 + 1.56 = 25.31
	assert.True(t, out.NetTotal.Equal(dec("156.20")), "neto: %s", out.NetTotal)
	assert.True(t, out.TaxTotal.Equal(dec("25.31")), "impuesto: %s", out.TaxTotal)
	assert.True(t, out.GrandTotal.Equal(dec("181.51")), "total: %s", out.GrandTotal)

	assert.Equal(t, "draft", out.Status)
	assert.Regexp(t, `^GRN-\d{4}-\d{4}$`, out.Number)
}

// Cantidad cero o costo negativo rechazan la creación.
func TestGRNCreate_LineasInvalidas(t *testing.T) {
	uc := usecase.NewGRNUseCase(memory.NewGRNRepository())

	in := grnRequest()
	in.Lines[0].Quantity = decimal.Zero
	_, err := uc.Create(in, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = grnRequest()
	in.Lines[1].UnitCost = dec("-1")
	_, err = uc.Create(in, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateGRNRequest{Supplier: "X"}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas no hay GRN")
}

// Transiciones: draft→received→verified con historial; los saltos y
// retrocesos se rechazan sin tocar el estado.
func TestGRNUpdateStatus_Transiciones(t *testing.T) {
	uc := usecase.NewGRNUseCase(memory.NewGRNRepository())
	created, err := uc.Create(grnRequest(), "Marcos Rivera")
	require.NoError(t, err)

	// salto draft→verified
	_, err = uc.UpdateStatus(created.ID, "verified", "Marcos Rivera")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	out, err := uc.UpdateStatus(created.ID, "received", "Marcos Rivera")
	require.NoError(t, err)
	assert.Equal(t, "received", out.Status)
	require.Len(t, out.History, 1)
	assert.Equal(t, "draft", out.History[0].From)
	assert.Equal(t, "received", out.History[0].To)
	assert.Equal(t, "Marcos Rivera", out.History[0].By)

	// retroceso received→draft
	_, err = uc.UpdateStatus(created.ID, "draft", "Marcos Rivera")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	out, err = uc.UpdateStatus(created.ID, "verified", "Alicia Gómez")
	require.NoError(t, err)
	assert.Equal(t, "verified", out.Status)
	assert.Len(t, out.History, 2)

	// estado final: nada más se mueve
	_, err = uc.UpdateStatus(created.ID, "received", "Alicia Gómez")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// GRN inexistente: nil sin error, el handler lo traduce a 404.
func TestGRNUpdateStatus_NoExiste(t *testing.T) {
	uc := usecase.NewGRNUseCase(memory.NewGRNRepository())
	out, err := uc.UpdateStatus("no-existe", "received", "x")
	assert.NoError(t, err)
	assert.Nil(t, out)
}

// Campos opcionales ausentes llevan placeholder en la respuesta.
func TestGRNResponse_Placeholders(t *testing.T) {
	uc := usecase.NewGRNUseCase(memory.NewGRNRepository())
	in := grnRequest()
	in.OrderRef = ""
	out, err := uc.Create(in, "")
	require.NoError(t, err)
	assert.Equal(t, "Not specified", out.OrderRef)
	assert.Equal(t, "Not assigned", out.ReceivedBy)
}
