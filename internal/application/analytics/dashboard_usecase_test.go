package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinivet/clinivet-api/internal/application/analytics"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

type stubAnalyticsRepo struct {
	clientes     int
	pacientes    int
	agendamentos int
	mesAtual     repository.TotaisFinanceiros
	mesAnterior  repository.TotaisFinanceiros
}

func (r *stubAnalyticsRepo) CountClientes(ctx context.Context, userID string) (int, error) {
	return r.clientes, nil
}
func (r *stubAnalyticsRepo) CountPacientes(ctx context.Context, userID string) (int, error) {
	return r.pacientes, nil
}
func (r *stubAnalyticsRepo) CountAgendamentos(ctx context.Context, userID string, from, to time.Time) (int, error) {
	return r.agendamentos, nil
}

// Devolve o período correto comparando o início do intervalo com o dia 1 do mês em curso.
func (r *stubAnalyticsRepo) GetTotaisFinanceiros(ctx context.Context, userID string, from, to time.Time) (*repository.TotaisFinanceiros, error) {
	now := time.Now()
	mesInicio := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if from.Before(mesInicio) {
		t := r.mesAnterior
		return &t, nil
	}
	t := r.mesAtual
	return &t, nil
}

func (r *stubAnalyticsRepo) ValorTotalEstoque(ctx context.Context, userID string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type stubProdutoRepo struct {
	baixo    []*entity.Produto
	vencendo []*entity.Produto
}

func (r *stubProdutoRepo) Create(p *entity.Produto) error                      { return nil }
func (r *stubProdutoRepo) GetByID(id string) (*entity.Produto, error)          { return nil, nil }
func (r *stubProdutoRepo) GetForUpdate(id string) (*entity.Produto, error)     { return nil, nil }
func (r *stubProdutoRepo) Update(p *entity.Produto) error                      { return nil }
func (r *stubProdutoRepo) UpdateQuantidade(produtoID string, q int) error      { return nil }
func (r *stubProdutoRepo) Deactivate(id string) error                          { return nil }
func (r *stubProdutoRepo) ListByUser(userID string, f repository.ProdutoFilter) ([]*entity.Produto, error) {
	return nil, nil
}
func (r *stubProdutoRepo) ListEstoqueBaixo(userID string) ([]*entity.Produto, error) {
	return r.baixo, nil
}
func (r *stubProdutoRepo) ListVencendo(userID string, until time.Time) ([]*entity.Produto, error) {
	return r.vencendo, nil
}

func TestVariacaoPercentual(t *testing.T) {
	casos := []struct {
		nome     string
		atual    string
		anterior string
		esperado string
	}{
		{"crescimento", "150", "100", "50"},
		{"queda", "80", "100", "-20"},
		{"sem variacao", "100", "100", "0"},
		{"anterior zero com receita", "42", "0", "100"},
		{"anterior zero sem receita", "0", "0", "0"},
		{"arredonda uma casa", "110", "30", "266.7"},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			atual := decimal.RequireFromString(c.atual)
			anterior := decimal.RequireFromString(c.anterior)
			esperado := decimal.RequireFromString(c.esperado)
			got := analytics.VariacaoPercentual(atual, anterior)
			assert.True(t, esperado.Equal(got), "esperado %s, veio %s", esperado, got)
		})
	}
}

func TestGetSummary_AgregaContadoresEFinanceiro(t *testing.T) {
	analyticsRepo := &stubAnalyticsRepo{
		clientes:     12,
		pacientes:    20,
		agendamentos: 3,
		mesAtual: repository.TotaisFinanceiros{
			Receitas: decimal.RequireFromString("1500.50"),
			Despesas: decimal.RequireFromString("400.25"),
		},
		mesAnterior: repository.TotaisFinanceiros{
			Receitas: decimal.RequireFromString("1000"),
			Despesas: decimal.RequireFromString("800"),
		},
	}
	produtoRepo := &stubProdutoRepo{
		baixo:    []*entity.Produto{{ID: "p1"}, {ID: "p2"}},
		vencendo: []*entity.Produto{{ID: "p3"}},
	}

	uc := analytics.NewDashboardUseCase(analyticsRepo, produtoRepo)
	summary, err := uc.GetSummary(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 12, summary.TotalClientes)
	assert.Equal(t, 20, summary.TotalPacientes)
	assert.Equal(t, 3, summary.AgendamentosHoje)
	assert.True(t, summary.ReceitasMes.Equal(decimal.RequireFromString("1500.50")))
	assert.True(t, summary.DespesasMes.Equal(decimal.RequireFromString("400.25")))
	assert.True(t, summary.SaldoMes.Equal(decimal.RequireFromString("1100.25")))
	assert.True(t, summary.VariacaoReceitas.Equal(decimal.RequireFromString("50.1")), "1500.50 sobre 1000 = +50.1%%, veio %s", summary.VariacaoReceitas)
	assert.True(t, summary.VariacaoDespesas.Equal(decimal.RequireFromString("-50")), "400.25 sobre 800 = -50%%, veio %s", summary.VariacaoDespesas)
	assert.Equal(t, 2, summary.ProdutosEstoqueBaixo)
	assert.Equal(t, 1, summary.ProdutosVencendo)
	assert.NotEmpty(t, summary.MesLabel)
}

func TestRelatorioFinanceiro_MesFechado(t *testing.T) {
	analyticsRepo := &stubAnalyticsRepo{
		mesAnterior: repository.TotaisFinanceiros{
			Receitas: decimal.RequireFromString("2000"),
			Despesas: decimal.RequireFromString("500"),
		},
	}
	uc := analytics.NewDashboardUseCase(analyticsRepo, &stubProdutoRepo{})

	now := time.Now()
	anterior := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	rel, err := uc.RelatorioFinanceiro(context.Background(), "user-1", anterior.Year(), anterior.Month())
	require.NoError(t, err)
	assert.True(t, rel.Receitas.Equal(decimal.RequireFromString("2000")))
	assert.True(t, rel.Despesas.Equal(decimal.RequireFromString("500")))
	assert.True(t, rel.Saldo.Equal(decimal.RequireFromString("1500")))
	assert.NotEmpty(t, rel.Periodo)
}
