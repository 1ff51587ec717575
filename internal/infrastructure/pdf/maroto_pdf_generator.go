// Package pdf genera los documentos imprimibles del restaurante (facturas y pedidos a proveedor).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Restaurante + contacto  │  Título + N° + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARTE: Cliente o proveedor                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Total                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + notas                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

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

	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 33, Green: 52, Blue: 38}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Issuer datos del restaurante impresos en la cabecera.
type Issuer struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// DefaultIssuer cabecera usada cuando no se configura otra.
var DefaultIssuer = Issuer{Name: "BlackWoods"}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator genera facturas y pedidos con Maroto v2.
type MarotoPDFGenerator struct {
	issuer Issuer
}

// NewMarotoPDFGenerator construye el generador. Un issuer sin nombre usa DefaultIssuer.
func NewMarotoPDFGenerator(issuer Issuer) *MarotoPDFGenerator {
	if issuer.Name == "" {
		issuer = DefaultIssuer
	}
	return &MarotoPDFGenerator{issuer: issuer}
}

// detail describe una fila de la tabla de detalle, común a facturas y pedidos.
type detail struct {
	quantity  decimal.Decimal
	label     string
	unitPrice decimal.Decimal
	total     decimal.Decimal
}

// document datos comunes de ambos tipos de documento.
type document struct {
	title   string
	number  string
	date    time.Time
	party   string
	partyID string
	contact string
	status  string
	details []detail
	total   decimal.Decimal
	notes   string
}

// InvoicePDF genera la factura con las líneas dadas.
func (g *MarotoPDFGenerator) InvoicePDF(_ context.Context, inv *entity.Invoice, items []*entity.InvoiceItem) ([]byte, error) {
	d := document{
		title:   "FACTURE",
		number:  inv.InvoiceNumber,
		date:    inv.IssueDate,
		party:   inv.ClientName,
		partyID: "CLIENT",
		contact: joinNonEmpty(inv.ClientPhone, inv.ClientEmail),
		status:  inv.Status,
		total:   inv.TotalAmount,
		notes:   inv.Notes,
	}
	if inv.DueDate != nil {
		d.notes = strings.TrimSpace("Échéance: " + inv.DueDate.Format("02/01/2006") + "\n" + d.notes)
	}
	for _, it := range items {
		d.details = append(d.details, detail{it.Quantity, it.Description, it.UnitPrice, it.TotalPrice})
	}
	return g.render(d)
}

// OrderPDF genera el bon de commande para el proveedor.
func (g *MarotoPDFGenerator) OrderPDF(_ context.Context, o *entity.Order, items []*entity.OrderItem) ([]byte, error) {
	d := document{
		title:   "BON DE COMMANDE",
		number:  o.OrderNumber,
		date:    o.OrderDate,
		party:   o.Supplier,
		partyID: "FOURNISSEUR",
		status:  o.Status,
		total:   o.TotalAmount,
		notes:   o.Notes,
	}
	for _, it := range items {
		label := it.ProductName
		if it.Unit != "" {
			label += " (" + it.Unit + ")"
		}
		d.details = append(d.details, detail{it.Quantity, label, it.UnitPrice, it.TotalPrice})
	}
	return g.render(d)
}

func (g *MarotoPDFGenerator) render(d document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(d.title+" "+d.number, true).
		WithAuthor(g.issuer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(d.details)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(d.total))
	if d.notes != "" {
		m.AddRows(notesRow(d.notes))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar %s %s: %w", strings.ToLower(d.title), d.number, err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: restaurante (izq) y tipo de documento + número + fecha (der).
func (g *MarotoPDFGenerator) headerRow(d document) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.issuer.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(joinNonEmpty(g.issuer.Address, g.issuer.Phone, g.issuer.Email), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(d.title, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(d.number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+d.date.Format("02/01/2006")+"   |   "+d.status, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func partyRow(d document) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(d.partyID, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(d.party, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(nonEmpty(d.contact, "-"), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qté", 2, align.Center),
		h("Désignation", 5, align.Left),
		h("P.U.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea.
func tableDetailRows(details []detail) []core.Row {
	result := make([]core.Row, 0, len(details))
	for _, d := range details {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(d.quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(d.label, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(FormatMoney(d.unitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(FormatMoney(d.total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(FormatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func notesRow(notes string) core.Row {
	return row.New(14).Add(col.New(12).Add(
		text.New(notes, props.Text{Size: 7.5, Color: colorGray, Top: 3}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "   |   ")
}

// FormatMoney formatea un importe en euros con espacio de miles y coma decimal.
// Ej: 1234.5 → "1 234,50 €", -80 → "-80,00 €"
func FormatMoney(v decimal.Decimal) string {
	s := v.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac + " €"
}
