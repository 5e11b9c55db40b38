package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TotaisFinanceiros receitas e despesas somadas em um período (transações canceladas fora).
type TotaisFinanceiros struct {
	Receitas decimal.Decimal
	Despesas decimal.Decimal
}

// AnalyticsRepository define as consultas de leitura para o dashboard e relatórios.
// As implementações são read-only (não modificam dados).
type AnalyticsRepository interface {
	// CountClientes devolve o total de clientes da conta.
	CountClientes(ctx context.Context, userID string) (int, error)

	// CountPacientes devolve o total de pacientes da conta.
	CountPacientes(ctx context.Context, userID string) (int, error)

	// CountAgendamentos conta agendamentos no intervalo [from, to] excluindo cancelados.
	CountAgendamentos(ctx context.Context, userID string, from, to time.Time) (int, error)

	// GetTotaisFinanceiros soma receitas e despesas no período, excluindo canceladas.
	// Usa COALESCE para devolver zero em período sem transações.
	GetTotaisFinanceiros(ctx context.Context, userID string, from, to time.Time) (*TotaisFinanceiros, error)

	// ValorTotalEstoque soma quantidade_atual * COALESCE(preco_custo, 0) dos produtos ativos.
	ValorTotalEstoque(ctx context.Context, userID string) (decimal.Decimal, error)
}
