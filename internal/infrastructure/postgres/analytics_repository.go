package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de leitura agregadas para dashboard e relatórios.
// As consultas recebem context porque rodam em goroutines paralelas no caso de uso.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository constrói o adaptador de analytics.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountClientes devolve o total de clientes da conta.
func (r *AnalyticsRepo) CountClientes(ctx context.Context, userID string) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clientes WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count clientes: %w", err)
	}
	return total, nil
}

// CountPacientes devolve o total de pacientes da conta.
func (r *AnalyticsRepo) CountPacientes(ctx context.Context, userID string) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM pacientes WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count pacientes: %w", err)
	}
	return total, nil
}

// CountAgendamentos conta agendamentos no intervalo, excluindo cancelados.
func (r *AnalyticsRepo) CountAgendamentos(ctx context.Context, userID string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM agendamentos
		WHERE user_id = $1 AND data_hora BETWEEN $2 AND $3 AND status <> 'cancelado'`
	var total int
	err := r.q.QueryRow(ctx, query, userID, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count agendamentos: %w", err)
	}
	return total, nil
}

// GetTotaisFinanceiros soma receitas e despesas do período, transações canceladas fora.
// COALESCE garante zero em período sem movimentação financeira.
func (r *AnalyticsRepo) GetTotaisFinanceiros(ctx context.Context, userID string, from, to time.Time) (*repository.TotaisFinanceiros, error) {
	query := `
		SELECT
			COALESCE(SUM(valor) FILTER (WHERE tipo = 'receita'), 0),
			COALESCE(SUM(valor) FILTER (WHERE tipo = 'despesa'), 0)
		FROM transacoes_financeiras
		WHERE user_id = $1 AND data_transacao BETWEEN $2 AND $3 AND status <> 'cancelado'`
	var totais repository.TotaisFinanceiros
	err := r.q.QueryRow(ctx, query, userID, from, to).Scan(&totais.Receitas, &totais.Despesas)
	if err != nil {
		return nil, fmt.Errorf("totais financeiros: %w", err)
	}
	return &totais, nil
}

// ValorTotalEstoque soma quantidade_atual * preco_custo dos produtos ativos.
// Produtos sem preço de custo contam como zero.
func (r *AnalyticsRepo) ValorTotalEstoque(ctx context.Context, userID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(quantidade_atual * COALESCE(preco_custo, 0)), 0)
		FROM produtos_estoque
		WHERE user_id = $1 AND ativo = true`
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, query, userID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor total estoque: %w", err)
	}
	return total, nil
}
