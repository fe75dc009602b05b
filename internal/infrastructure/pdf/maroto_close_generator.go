// Package pdf implementa el comprobante imprimible del cierre de caja diario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la sede  │  Fecha del cierre             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ventas / Otros ingresos / Gastos / Retiros        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CAJA: Efectivo esperado / Contado / Diferencia             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: Notas + responsable del cierre                        │
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
	"github.com/shopspring/decimal"

	"github.com/nordico/barber-api/internal/application/dto"
	"github.com/nordico/barber-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 20, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ reports.ClosePDFGenerator = (*MarotoCloseGenerator)(nil)

// MarotoCloseGenerator implementa reports.ClosePDFGenerator usando Maroto v2.
type MarotoCloseGenerator struct{}

// NewMarotoCloseGenerator construye el generador.
func NewMarotoCloseGenerator() *MarotoCloseGenerator { return &MarotoCloseGenerator{} }

// Generate genera el PDF del cierre y devuelve sus bytes.
func (g *MarotoCloseGenerator) Generate(close dto.DailyCloseResponse, locationName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cierre de Caja", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(close, locationName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRows(close)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(cashRows(close)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(close))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: sede (izq) y fecha del cierre (der).
func headerRow(close dto.DailyCloseResponse, locationName string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("NÓRDICO BARBER", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sede: "+locationName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CIERRE DE CAJA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+close.Date, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Transacciones: %d", close.TransactionCount), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// totalsRows: ingresos y egresos del día, un renglón por concepto.
func totalsRows(close dto.DailyCloseResponse) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("MOVIMIENTOS DEL DÍA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
		amountRow("Ventas:", close.TotalSales),
		amountRow("Otros ingresos:", close.TotalOtherIncome),
		amountRow("Gastos:", close.TotalExpenses.Neg()),
		amountRow("Retiros de caja:", close.TotalWithdrawals.Neg()),
	}
	return rows
}

// cashRows: arqueo de caja con la diferencia resaltada si no cuadra.
func cashRows(close dto.DailyCloseResponse) []core.Row {
	diffColor := colorPrimary
	if !close.Difference.IsZero() {
		diffColor = colorRed
	}
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("ARQUEO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
		amountRow("Efectivo esperado:", close.ExpectedCash),
		amountRow("Efectivo contado:", close.CountedCash),
		row.New(8).Add(
			col.New(6).Add(text.New("Diferencia:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 1,
			})),
			col.New(4).Add(text.New("$"+close.Difference.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: diffColor, Right: 1, Top: 1,
			})),
			col.New(2),
		),
	}
}

// footerRow: notas y responsable.
func footerRow(close dto.DailyCloseResponse) core.Row {
	closedBy := "Responsable: " + close.ClosedBy
	if close.Automatic {
		closedBy = "Cierre automático generado al final del día."
	}
	notes := close.Notes
	if notes == "" {
		notes = "—"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Notas: "+notes, props.Text{Size: 8, Color: colorGray, Top: 2}),
			text.New(closedBy, props.Text{Size: 8, Color: colorGray, Top: 8}),
		),
	)
}

// amountRow: renglón etiqueta/monto alineado a la derecha.
func amountRow(label string, amount decimal.Decimal) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(label, props.Text{
			Size: 9, Align: align.Right, Right: 2, Top: 1,
		})),
		col.New(4).Add(text.New("$"+amount.StringFixed(2), props.Text{
			Size: 9, Align: align.Right, Right: 1, Top: 1,
		})),
		col.New(2),
	)
}
