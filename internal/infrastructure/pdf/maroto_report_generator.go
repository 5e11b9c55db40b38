// Package pdf implementa a geração dos relatórios em PDF da clínica
// (estoque e fechamento financeiro mensal) usando Maroto v2.
//
// Layout da página A4 do relatório de estoque:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + data de geração                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VALOR TOTAL DO ESTOQUE                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: produtos com estoque baixo (atual vs mínimo)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: produtos vencendo em 30 dias (lote + validade)      │
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/application/reports"
	"github.com/clinivet/clinivet-api/internal/application/stock"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
)

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 93}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ptBR formata números no padrão brasileiro (1.234,56).
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GerarRelatorioEstoque gera o PDF do relatório de estoque e devolve seus bytes.
func (g *MarotoReportGenerator) GerarRelatorioEstoque(_ context.Context, rel *stock.RelatorioEstoque) ([]byte, error) {
	m := newDocument("Relatório de Estoque")

	m.AddRows(titleRow("Relatório de Estoque", "Gerado em "+rel.GeradoEm.Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(10).Add(
		col.New(6).Add(text.New("Valor total do estoque (custo):", props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 2,
		})),
		col.New(6).Add(text.New(moedaBR(rel.ValorTotal), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	))

	// Estoque baixo
	m.AddRows(sectionRow(fmt.Sprintf("Produtos com estoque baixo (%d)", len(rel.EstoqueBaixo))))
	m.AddRows(estoqueBaixoHeader())
	if len(rel.EstoqueBaixo) == 0 {
		m.AddRows(emptyRow("Nenhum produto abaixo do estoque mínimo."))
	}
	for _, p := range rel.EstoqueBaixo {
		m.AddRows(estoqueBaixoRow(p))
	}

	// Vencendo
	m.AddRows(sectionRow(fmt.Sprintf("Produtos vencendo em 30 dias (%d)", len(rel.Vencendo))))
	m.AddRows(vencendoHeader())
	if len(rel.Vencendo) == 0 {
		m.AddRows(emptyRow("Nenhum produto com validade nos próximos 30 dias."))
	}
	for _, p := range rel.Vencendo {
		m.AddRows(vencendoRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar relatorio de estoque: %w", err)
	}
	return doc.GetBytes(), nil
}

// GerarRelatorioFinanceiro gera o PDF do fechamento financeiro mensal.
func (g *MarotoReportGenerator) GerarRelatorioFinanceiro(_ context.Context, rel *dto.RelatorioFinanceiroDTO, transacoes []*entity.TransacaoFinanceira) ([]byte, error) {
	m := newDocument("Relatório Financeiro")

	m.AddRows(titleRow("Relatório Financeiro", rel.Periodo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	totalLine := func(label string, valor decimal.Decimal, destaque bool) core.Row {
		size := 10.0
		color := colorGray
		style := fontstyle.Normal
		if destaque {
			size = 11
			color = colorPrimary
			style = fontstyle.Bold
		}
		return row.New(7).Add(
			col.New(6).Add(text.New(label, props.Text{Size: size, Style: style, Top: 1})),
			col.New(6).Add(text.New(moedaBR(valor), props.Text{
				Size: size, Style: style, Align: align.Right, Top: 1, Color: color,
			})),
		)
	}
	m.AddRows(
		totalLine("Receitas:", rel.Receitas, false),
		totalLine("Despesas:", rel.Despesas, false),
		totalLine("Saldo do período:", rel.Saldo, true),
	)

	m.AddRows(sectionRow(fmt.Sprintf("Transações do período (%d)", len(transacoes))))
	m.AddRows(transacaoHeader())
	if len(transacoes) == 0 {
		m.AddRows(emptyRow("Nenhuma transação no período."))
	}
	for _, t := range transacoes {
		m.AddRows(transacaoRow(t))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar relatorio financeiro: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func titleRow(titulo, subtitulo string) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitulo, props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
	)
}

func sectionRow(titulo string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 4,
		}),
	))
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func bodyCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func estoqueBaixoHeader() core.Row {
	return row.New(7).Add(
		headerCell("Produto", 5, align.Left),
		headerCell("Categoria", 3, align.Left),
		headerCell("Atual", 2, align.Right),
		headerCell("Mínimo", 2, align.Right),
	)
}

func estoqueBaixoRow(p *entity.Produto) core.Row {
	return row.New(6).Add(
		bodyCell(p.Nome, 5, align.Left),
		bodyCell(p.Categoria, 3, align.Left),
		bodyCell(inteiroBR(p.QuantidadeAtual), 2, align.Right),
		bodyCell(inteiroBR(p.QuantidadeMinima), 2, align.Right),
	)
}

func vencendoHeader() core.Row {
	return row.New(7).Add(
		headerCell("Produto", 5, align.Left),
		headerCell("Lote", 3, align.Left),
		headerCell("Validade", 2, align.Center),
		headerCell("Qtd.", 2, align.Right),
	)
}

func vencendoRow(p *entity.Produto) core.Row {
	validade := "—"
	if p.DataValidade != nil {
		validade = p.DataValidade.Format("02/01/2006")
	}
	return row.New(6).Add(
		bodyCell(p.Nome, 5, align.Left),
		bodyCell(p.Lote, 3, align.Left),
		bodyCell(validade, 2, align.Center),
		bodyCell(inteiroBR(p.QuantidadeAtual), 2, align.Right),
	)
}

func transacaoHeader() core.Row {
	return row.New(7).Add(
		headerCell("Data", 2, align.Left),
		headerCell("Descrição", 4, align.Left),
		headerCell("Categoria", 2, align.Left),
		headerCell("Tipo", 2, align.Center),
		headerCell("Valor", 2, align.Right),
	)
}

func transacaoRow(t *entity.TransacaoFinanceira) core.Row {
	return row.New(6).Add(
		bodyCell(t.DataTransacao.Format("02/01/2006"), 2, align.Left),
		bodyCell(t.Descricao, 4, align.Left),
		bodyCell(t.Categoria, 2, align.Left),
		bodyCell(t.Tipo, 2, align.Center),
		bodyCell(moedaBR(t.Valor), 2, align.Right),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// moedaBR formata um valor monetário no padrão brasileiro: R$ 1.234,56.
func moedaBR(v decimal.Decimal) string {
	f, _ := v.Float64()
	return "R$ " + ptBR.Sprint(number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// inteiroBR formata um inteiro com separador de milhar pt-BR.
func inteiroBR(n int) string {
	return ptBR.Sprint(number.Decimal(n))
}
