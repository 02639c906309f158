// Package pdf implementa la representación gráfica de la factura que se
// adjunta en el correo al cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa  │  N° Factura + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + empresa + contacto                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  IMPORTES: Subtotal / Impuestos / Descuento / TOTAL         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: vencimiento + notas                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/tu-usuario/textil-crm/internal/application/notification"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ notification.InvoicePDFGenerator = (*MarotoInvoiceGenerator)(nil)

// MarotoInvoiceGenerator implementa notification.InvoicePDFGenerator usando Maroto v2.
type MarotoInvoiceGenerator struct {
	companyName string
}

// NewMarotoInvoiceGenerator construye el generador. companyName encabeza el documento.
func NewMarotoInvoiceGenerator(companyName string) *MarotoInvoiceGenerator {
	return &MarotoInvoiceGenerator{companyName: companyName}
}

// Generate genera el PDF de la factura y devuelve sus bytes.
func (g *MarotoInvoiceGenerator) Generate(invoice *entity.Invoice, customer *entity.Customer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+invoice.InvoiceNumber, true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(amountsRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(invoice) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa (izq) y N° Factura + Fecha (der).
func (g *MarotoInvoiceGenerator) headerRow(invoice *entity.Invoice) core.Row {
	fecha := invoice.InvoiceDate.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente facturado.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Empresa: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(customer.CompanyName, "—"),
				nonEmpty(customer.Email, "—"),
				nonEmpty(customer.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// amountsRow: bloque de importes alineado a la derecha.
func amountsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(32).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Impuestos:"),
			label("Descuento:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value(invoice.Subtotal.StringFixed(2)),
			value(invoice.TaxAmount.StringFixed(2)),
			value("-"+invoice.DiscountAmount.StringFixed(2)),
			grandValue(invoice.TotalAmount.StringFixed(2)),
		),
		col.New(3),
	)
}

// footerRows: vencimiento + notas.
func footerRows(invoice *entity.Invoice) []core.Row {
	var rows []core.Row
	if invoice.DueDate != nil {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Fecha de vencimiento: "+invoice.DueDate.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
		)))
	}
	if invoice.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+invoice.Notes, props.Text{Size: 7, Color: colorGray, Top: 2}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Gracias por su compra. Conserve este documento como soporte de su pedido.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
