// Package pdf implementa la generación de documentos con Maroto v2:
// estado de cuenta, recibo de pago y reporte ejecutivo. Solo renderiza datos
// ya computados; ninguna cifra se recalcula aquí.
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jcastellanos/terralote-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 83, Blue: 45}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoGenerator implementa document.Generator usando Maroto v2.
type MarotoGenerator struct {
	companyName string
}

// NewMarotoGenerator construye el generador. companyName encabeza cada documento.
func NewMarotoGenerator(companyName string) *MarotoGenerator {
	return &MarotoGenerator{companyName: companyName}
}

func (g *MarotoGenerator) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.companyName, true).
		Build()
	return maroto.New(cfg)
}

// headerRows: nombre de la empresa + título del documento.
func (g *MarotoGenerator) headerRows(title string) []core.Row {
	return []core.Row{
		row.New(14).Add(
			col.New(7).Add(
				text.New(g.companyName, props.Text{
					Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
				}),
			),
			col.New(5).Add(
				text.New(title, props.Text{
					Style: fontstyle.Bold, Size: 10, Align: align.Right,
					Color: colorPrimary, Top: 3,
				}),
			),
		),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

// labelValueRow fila de dos columnas etiqueta/valor.
func labelValueRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(4).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(8).Add(text.New(value, props.Text{Size: 9, Top: 1, Color: colorGray})),
	)
}

// StatementPDF estado de cuenta: datos del lote, totales y tabla de pagos.
// Un saldo negativo (sobrepago) se imprime tal cual, nunca se trunca.
func (g *MarotoGenerator) StatementPDF(_ context.Context, st *dto.StatementResponse) ([]byte, error) {
	m := g.newDocument("Estado de Cuenta")
	m.AddRows(g.headerRows("ESTADO DE CUENTA")...)

	m.AddRows(
		labelValueRow("Proyecto:", st.ProjectName),
		labelValueRow("Lote:", st.LotLabel),
		labelValueRow("Cliente:", st.ClientName),
		labelValueRow("Generado:", st.GeneratedAt.Format("02/01/2006 15:04")),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(
		labelValueRow("Precio total:", money(st.TotalPrice)),
		labelValueRow("Total pagado:", money(st.TotalPaid)),
		labelValueRow("Saldo:", money(st.Remaining)),
		labelValueRow("Avance:", st.PaidPercentage.StringFixed(2)+" %"),
		labelValueRow("Cuotas pagadas:", fmt.Sprintf("%d (restan %d)", st.MonthsPaid, st.MonthsRemaining)),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(paymentsHeaderRow())
	for _, p := range st.Payments {
		m.AddRows(paymentRow(&p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: estado de cuenta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ReceiptPDF recibo individual de un pago.
func (g *MarotoGenerator) ReceiptPDF(_ context.Context, p *dto.PaymentResponse) ([]byte, error) {
	m := g.newDocument("Recibo de Pago")
	m.AddRows(g.headerRows("RECIBO DE PAGO")...)

	m.AddRows(
		labelValueRow("Recibo N°:", p.ReceiptNumber),
		labelValueRow("Fecha:", p.Date.Format("02/01/2006")),
		labelValueRow("Cliente:", p.ClientName),
		labelValueRow("Lote:", p.LotLabel),
		labelValueRow("Concepto:", paymentTypeLabel(p.Type, p.PaymentNumber)),
		labelValueRow("Método:", methodLabel(p.Method)),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(12).Add(
		col.New(6).Add(text.New("VALOR RECIBIDO", props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
		})),
		col.New(6).Add(text.New(money(p.Amount), props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ExecutiveReportPDF reporte ejecutivo: globales + fila por proyecto.
func (g *MarotoGenerator) ExecutiveReportPDF(_ context.Context, r *dto.ExecutiveReportResponse) ([]byte, error) {
	m := g.newDocument("Reporte Ejecutivo")
	m.AddRows(g.headerRows("REPORTE EJECUTIVO")...)

	m.AddRows(
		labelValueRow("Generado:", r.GeneratedAt.Format("02/01/2006 15:04")),
		labelValueRow("Total recaudado:", money(r.TotalCollected)),
		labelValueRow("Valor vendido:", money(r.TotalSold)),
		labelValueRow("Valor reservado:", money(r.TotalReserved)),
		labelValueRow("Lotes:", fmt.Sprintf("%d disponibles / %d reservados / %d vendidos",
			r.LotsAvailable, r.LotsReserved, r.LotsSold)),
		labelValueRow("Comisiones:", fmt.Sprintf("pendientes %s · aprobadas %s · pagadas %s",
			money(r.Commissions.Pending), money(r.Commissions.Approved), money(r.Commissions.Paid))),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(projectsHeaderRow())
	for _, p := range r.Projects {
		m.AddRows(projectRow(&p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: reporte ejecutivo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Tablas ────────────────────────────────────────────────────────────────────

func paymentsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Recibo", 3, align.Left),
		h("Concepto", 3, align.Left),
		h("Método", 2, align.Left),
		h("Valor", 2, align.Right),
	)
}

func paymentRow(p *dto.PaymentResponse) core.Row {
	c := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		c(p.Date.Format("02/01/2006"), 2, align.Left),
		c(p.ReceiptNumber, 3, align.Left),
		c(paymentTypeLabel(p.Type, p.PaymentNumber), 3, align.Left),
		c(methodLabel(p.Method), 2, align.Left),
		c(money(p.Amount), 2, align.Right),
	)
}

func projectsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Proyecto", 4, align.Left),
		h("Disp.", 1, align.Center),
		h("Res.", 1, align.Center),
		h("Vend.", 1, align.Center),
		h("Reservado", 2, align.Right),
		h("Vendido", 3, align.Right),
	)
}

func projectRow(p *dto.ProjectReportRow) core.Row {
	c := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		c(p.ProjectName, 4, align.Left),
		c(fmt.Sprintf("%d", p.AvailableLots), 1, align.Center),
		c(fmt.Sprintf("%d", p.ReservedLots), 1, align.Center),
		c(fmt.Sprintf("%d", p.SoldLots), 1, align.Center),
		c(money(p.TotalReserved), 2, align.Right),
		c(money(p.TotalSold), 3, align.Right),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// money formatea con separador de miles: $1.234.567 (el signo queda delante).
func money(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

func paymentTypeLabel(t string, number int) string {
	switch t {
	case "down_payment":
		return "Cuota inicial"
	case "monthly":
		if number > 0 {
			return fmt.Sprintf("Mensualidad #%d", number)
		}
		return "Mensualidad"
	case "extra":
		return "Abono extraordinario"
	default:
		return t
	}
}

func methodLabel(m string) string {
	switch m {
	case "cash":
		return "Efectivo"
	case "transfer":
		return "Transferencia"
	case "card":
		return "Tarjeta"
	default:
		return m
	}
}
