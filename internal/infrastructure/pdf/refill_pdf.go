// Package pdf genera la lista de reposición (Auffüllliste) en PDF A4 con Maroto v2.
//
// Layout:
//
//	┌──────────────────────────────────────────────────────────┐
//	│  HEADER: título + vitrina / fecha                        │
//	│  RESUMEN: stock total | kritisch | Warnung | OK          │
//	│  ──────────────────────────────────────────────────────  │
//	│  TABLA: Vitrine | Produkt | Bestand | Min | Ziel | Ampel │
//	└──────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Vitrinas-api/internal/application/dto"
	"github.com/jhoicas/Vitrinas-api/internal/application/ports"
)

var _ ports.RefillPDFRenderer = (*RefillRenderer)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 190, Green: 30, Blue: 45}
	colorAmber   = &props.Color{Red: 200, Green: 130, Blue: 0}
	colorGreen   = &props.Color{Red: 30, Green: 130, Blue: 60}
)

// statusLabel etiquetas del semáforo tal como las ve el personal en tienda.
var statusLabel = map[string]string{
	"critical": "ROT",
	"low":      "GELB",
	"ok":       "GRÜN",
}

// RefillRenderer implementa ports.RefillPDFRenderer.
type RefillRenderer struct {
	printer *message.Printer
	now     func() time.Time
}

// NewRefillRenderer números con separador de miles alemán (1.234).
func NewRefillRenderer() *RefillRenderer {
	return &RefillRenderer{printer: message.NewPrinter(language.German), now: time.Now}
}

// RenderRefillList genera el PDF y devuelve sus bytes.
func (g *RefillRenderer) RenderRefillList(_ context.Context, list *dto.RefillListResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Auffüllliste", true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(list))
	m.AddRows(g.summaryRow(list.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))
	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(list.Items)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *RefillRenderer) headerRow(list *dto.RefillListResponse) core.Row {
	scope := "Alle Vitrinen"
	if list.VitrineID != "" {
		scope = "Vitrine " + list.VitrineID
		if len(list.Cases) == 1 && list.Cases[0].LocationName != "" {
			scope += " / " + list.Cases[0].LocationName
		}
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("AUFFÜLLLISTE", props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New(scope, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Stand: "+g.now().Format("02.01.2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func (g *RefillRenderer) summaryRow(s dto.StockSummary) core.Row {
	cell := func(label string, value int64, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(g.printer.Sprintf("%d", value), props.Text{Style: fontstyle.Bold, Size: 11, Color: c, Top: 5}),
		)
	}
	return row.New(14).Add(
		cell("Gesamtbestand", s.TotalStock, colorPrimary),
		cell("Kritisch", int64(s.Critical), colorRed),
		cell("Warnung", int64(s.Warnings), colorAmber),
		cell("OK", int64(s.OK), colorGreen),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Vitrine", 3, align.Left),
		h("Produkt", 4, align.Left),
		h("Bestand", 1, align.Right),
		h("Min", 1, align.Right),
		h("Ziel", 1, align.Right),
		h("Ampel", 2, align.Center),
	)
}

func (g *RefillRenderer) tableRows(items []dto.StockRowResponse) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		vitrine := it.VitrineID
		if it.LocationName != "" {
			vitrine += " / " + it.LocationName
		}
		product := it.ProductName
		if product == "" {
			product = it.ProductID
		}
		minStock, target := "-", "-"
		if it.MinStock != nil {
			minStock = g.printer.Sprintf("%d", *it.MinStock)
		}
		if it.TargetStock != nil {
			target = g.printer.Sprintf("%d", it.TargetStock.Round(0).IntPart())
		}
		cellText := func(s string, a align.Type) core.Component {
			return text.New(s, props.Text{Size: 8, Align: a, Top: 1})
		}
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(cellText(vitrine, align.Left)),
			col.New(4).Add(cellText(product, align.Left)),
			col.New(1).Add(cellText(g.printer.Sprintf("%d", it.StockQty), align.Right)),
			col.New(1).Add(cellText(minStock, align.Right)),
			col.New(1).Add(cellText(target, align.Right)),
			col.New(2).Add(text.New(lightLabel(it.Status), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: lightColor(it.Status),
			})),
		))
	}
	return rows
}

func lightLabel(status string) string {
	if l, ok := statusLabel[status]; ok {
		return l
	}
	return status
}

func lightColor(status string) *props.Color {
	switch status {
	case "critical":
		return colorRed
	case "low":
		return colorAmber
	default:
		return colorGreen
	}
}
