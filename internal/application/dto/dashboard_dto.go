package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resposta de GET /api/dashboard/summary.
// KPIs do dia e do mês em curso, mais os alertas de estoque.
type DashboardSummaryDTO struct {
	TotalClientes    int `json:"total_clientes"`
	TotalPacientes   int `json:"total_pacientes"`
	AgendamentosHoje int `json:"agendamentos_hoje"`

	// Financeiro do mês em curso (dia 1 – hoje)
	ReceitasMes decimal.Decimal `json:"receitas_mes"`
	DespesasMes decimal.Decimal `json:"despesas_mes"`
	SaldoMes    decimal.Decimal `json:"saldo_mes"`

	// Variação percentual em relação ao mês anterior
	VariacaoReceitas decimal.Decimal `json:"variacao_receitas_pct"`
	VariacaoDespesas decimal.Decimal `json:"variacao_despesas_pct"`

	// Alertas de estoque
	ProdutosEstoqueBaixo int `json:"produtos_estoque_baixo"`
	ProdutosVencendo     int `json:"produtos_vencendo"` // janela de 30 dias

	// Metadados do período, ex: "Agosto 2026"
	MesLabel string `json:"mes_label"`
}

// RelatorioFinanceiroDTO totais financeiros de um período para o relatório mensal.
type RelatorioFinanceiroDTO struct {
	Periodo  string          `json:"periodo"`
	Receitas decimal.Decimal `json:"receitas"`
	Despesas decimal.Decimal `json:"despesas"`
	Saldo    decimal.Decimal `json:"saldo"`
}
