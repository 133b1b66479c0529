// Package pdf implementa la representación gráfica de los documentos
// operativos (notas de entrada y notas de entrega) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: VetPharm Pro  │  N° Documento + Fecha + Estado     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRAPARTE: Proveedor / Cliente + referencia              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Lote | P.Unit | Subtotal          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Neto / Impuestos / TOTAL                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/vetpharm/vetpharm-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 74}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reports.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateGRNPDF genera el PDF de una nota de entrada y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateGRNPDF(_ context.Context, grn *entity.GRN) ([]byte, error) {
	m := newDocument("Nota de Entrada " + grn.Number)

	m.AddRows(headerRow("NOTA DE ENTRADA DE MERCANCÍA", grn.Number, grn.Date.Format("02/01/2006"), grn.Status))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow("PROVEEDOR", grn.Supplier, fmt.Sprintf(
		"Orden de compra: %s   |   Recibido por: %s",
		nonEmpty(grn.OrderRef, "—"),
		nonEmpty(grn.ReceivedBy, "—"),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow("Costo Unit."))
	for _, l := range grn.Lines {
		m.AddRows(detailRow(l.Quantity, l.ProductName, l.Batch, l.UnitCost, l.Subtotal))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(grn.NetTotal, grn.TaxTotal, grn.GrandTotal))

	return render(m)
}

// GenerateDeliveryPDF genera el PDF de una nota de entrega.
func (g *MarotoPDFGenerator) GenerateDeliveryPDF(_ context.Context, note *entity.DeliveryNote) ([]byte, error) {
	m := newDocument("Nota de Entrega " + note.Number)

	m.AddRows(headerRow("NOTA DE ENTREGA", note.Number, note.Date.Format("02/01/2006"), note.Status))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow("CLIENTE", note.Customer, fmt.Sprintf(
		"Dirección: %s   |   Mensajero: %s",
		nonEmpty(note.Address, "—"),
		nonEmpty(note.Courier, "—"),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow("Precio Unit."))
	for _, l := range note.Lines {
		m.AddRows(detailRow(l.Quantity, l.ProductName, l.Batch, l.UnitPrice, l.Subtotal))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(note.NetTotal, decimal.Zero, note.GrandTotal))

	return render(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor("VetPharm Pro", true).
		Build()
	return maroto.New(cfg)
}

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la farmacia (izq) y tipo + número + fecha + estado (der).
func headerRow(docType, number, date, status string) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New("VetPharm Pro", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Farmacia veterinaria", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(docType, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Fecha: %s   |   Estado: %s", date, status), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partyRow: contraparte del documento (proveedor o cliente).
func partyRow(label, name, detail string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(detail, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow(priceLabel string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Lote", 2, align.Center),
		h(priceLabel, 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// detailRow: una fila por línea del documento.
func detailRow(qty decimal.Decimal, product, batch string, unit, subtotal decimal.Decimal) core.Row {
	return row.New(7).Add(
		col.New(1).Add(text.New(
			qty.StringFixed(0),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(5).Add(text.New(
			product,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			nonEmpty(batch, "—"),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			"$"+formatMoney(unit.StringFixed(2)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			"$"+formatMoney(subtotal.StringFixed(2)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(net, tax, grand decimal.Decimal) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grandLabel := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: top,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal neto:", 2),
			label("Impuestos:", 9),
			grandLabel("TOTAL:", 17),
		),
		col.New(3).Add(
			value("$"+formatMoney(net.StringFixed(2)), 2),
			value("$"+formatMoney(tax.StringFixed(2)), 9),
			grandValue("$"+formatMoney(grand.StringFixed(2)), 17),
		),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en la parte entera de un string numérico.
// Ej: "25000.00" → "25.000,00"
func formatMoney(s string) string {
	intPart, decPart := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, decPart = s[:i], s[i+1:]
			break
		}
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	if decPart != "" {
		buf = append(buf, ',')
		buf = append(buf, decPart...)
	}
	return string(buf)
}
