// Package pdf implementa a geração do relatório de vendas em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: D-DIK Sports  │  Relatório de Vendas + Período      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Produto | SKU | Qtd | Preço | Desc | Lucro   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Unidades vendidas / Lucro total                     │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	"github.com/ddik-sports/ddik-api/internal/domain/repository"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 62}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSalesReportGenerator implementa reports.SalesReportGenerator usando
// Maroto v2.
type MarotoSalesReportGenerator struct{}

// NewMarotoSalesReportGenerator constrói o gerador.
func NewMarotoSalesReportGenerator() *MarotoSalesReportGenerator {
	return &MarotoSalesReportGenerator{}
}

// GenerateSalesReport gera o PDF e devolve seus bytes.
func (g *MarotoSalesReportGenerator) GenerateSalesReport(
	_ context.Context,
	from, to time.Time,
	lines []repository.SalesLineResult,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Vendas", true).
		WithAuthor("D-DIK Sports", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(lines))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome da loja (esq) e título + período (dir).
func headerRow(from, to time.Time) core.Row {
	periodo := fmt.Sprintf("%s – %s", from.Format("02/01/2006"), to.Format("02/01/2006"))

	return row.New(16).Add(
		col.New(6).Add(
			text.New("D-DIK Sports", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(6).Add(
			text.New("RELATÓRIO DE VENDAS", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+periodo, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de vendas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Produto", 3, align.Left),
		h("SKU", 2, align.Left),
		h("Qtd", 1, align.Center),
		h("Preço", 2, align.Right),
		h("Desc.", 1, align.Center),
		h("Lucro", 1, align.Right),
	)
}

// tableLineRows: uma linha por venda.
func tableLineRows(lines []repository.SalesLineResult) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				l.SaleDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(3).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.ProductSKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+l.SalePrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.Discount.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				"R$ "+l.Profit.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(lines []repository.SalesLineResult) core.Row {
	totalUnits := 0
	totalProfit := decimal.Zero
	for _, l := range lines {
		totalUnits += l.Quantity
		totalProfit = totalProfit.Add(l.Profit)
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(14).Add(
		col.New(6), // espaço esquerdo
		col.New(3).Add(
			label("Unidades vendidas:"),
			label("Lucro total:"),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", totalUnits)),
			value("R$ "+totalProfit.StringFixed(2)),
		),
	)
}
