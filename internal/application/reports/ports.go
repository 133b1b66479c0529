package reports

import (
	"context"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
)

// DocumentPDFGenerator puerto hacia la infraestructura de PDF.
// Lo implementa pdf.MarotoPDFGenerator; la interfaz evita acoplar los casos
// de uso a la librería concreta.
type DocumentPDFGenerator interface {
	GenerateGRNPDF(ctx context.Context, grn *entity.GRN) ([]byte, error)
	GenerateDeliveryPDF(ctx context.Context, note *entity.DeliveryNote) ([]byte, error)
}
