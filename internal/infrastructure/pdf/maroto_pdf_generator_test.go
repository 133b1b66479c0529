package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetpharm/vetpharm-pro/internal/infrastructure/memory"
	"github.com/vetpharm/vetpharm-pro/internal/infrastructure/pdf"
)

// Los documentos generados son PDFs válidos (cabecera %PDF) con contenido.
func TestGenerarDocumentos(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator()
	seed := memory.DefaultSeed(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	require.NotEmpty(t, seed.GRNs)
	data, err := gen.GenerateGRNPDF(ctx, &seed.GRNs[0])
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))

	require.NotEmpty(t, seed.Deliveries)
	data, err = gen.GenerateDeliveryPDF(ctx, &seed.Deliveries[0])
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
