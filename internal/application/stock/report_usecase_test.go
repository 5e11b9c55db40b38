package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinivet/clinivet-api/internal/application/stock"
	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

type memAnalyticsRepo struct {
	valorEstoque decimal.Decimal
}

func (r *memAnalyticsRepo) CountClientes(ctx context.Context, userID string) (int, error) {
	return 0, nil
}
func (r *memAnalyticsRepo) CountPacientes(ctx context.Context, userID string) (int, error) {
	return 0, nil
}
func (r *memAnalyticsRepo) CountAgendamentos(ctx context.Context, userID string, from, to time.Time) (int, error) {
	return 0, nil
}
func (r *memAnalyticsRepo) GetTotaisFinanceiros(ctx context.Context, userID string, from, to time.Time) (*repository.TotaisFinanceiros, error) {
	return &repository.TotaisFinanceiros{}, nil
}
func (r *memAnalyticsRepo) ValorTotalEstoque(ctx context.Context, userID string) (decimal.Decimal, error) {
	return r.valorEstoque, nil
}

func newReportUseCase(s *memStore, analytics *memAnalyticsRepo) *stock.StockReportUseCase {
	if analytics == nil {
		analytics = &memAnalyticsRepo{}
	}
	return stock.NewStockReportUseCase(&memProdutoRepo{s}, &memMovRepo{s}, analytics)
}

func TestVencendo_DiasNegativos(t *testing.T) {
	uc := newReportUseCase(newMemStore(), nil)

	_, err := uc.Vencendo(contaA, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVencendo_SomenteComValidadeNaJanela(t *testing.T) {
	s := newMemStore()
	dentro := s.addProduto(contaA, 10, true)
	fora := s.addProduto(contaA, 10, true)
	semValidade := s.addProduto(contaA, 10, true)

	emDezDias := time.Now().AddDate(0, 0, 10)
	emNoventaDias := time.Now().AddDate(0, 0, 90)
	s.mu.Lock()
	s.produtos[dentro.ID].DataValidade = &emDezDias
	s.produtos[fora.ID].DataValidade = &emNoventaDias
	_ = semValidade
	s.mu.Unlock()

	uc := newReportUseCase(s, nil)
	produtos, err := uc.Vencendo(contaA, 30)
	require.NoError(t, err)
	require.Len(t, produtos, 1)
	assert.Equal(t, dentro.ID, produtos[0].ID)
}

func TestEstoqueBaixo_LimiteInclusivo(t *testing.T) {
	s := newMemStore()
	noLimite := s.addProduto(contaA, 2, true) // quantidade_minima = 2
	acima := s.addProduto(contaA, 3, true)

	uc := newReportUseCase(s, nil)
	produtos, err := uc.EstoqueBaixo(contaA)
	require.NoError(t, err)
	require.Len(t, produtos, 1, "igual ao mínimo conta como estoque baixo; acima não")
	assert.Equal(t, noLimite.ID, produtos[0].ID)
	_ = acima
}

func TestHistoricoProduto_ChecaDono(t *testing.T) {
	s := newMemStore()
	meu := s.addProduto(contaA, 10, true)
	alheio := s.addProduto(contaB, 10, true)
	uc := newReportUseCase(s, nil)

	_, err := uc.HistoricoProduto(contaA, alheio.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.HistoricoProduto(contaA, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.HistoricoProduto("", meu.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	movs, err := uc.HistoricoProduto(contaA, meu.ID)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

// Produto desativado continua consultável: o histórico sobrevive à exclusão lógica.
func TestHistoricoProduto_ProdutoDesativado(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 10, true)
	movUC, _ := newMovementUseCase(s)
	_, err := movUC.Register(context.Background(), stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 3,
	})
	require.NoError(t, err)
	require.NoError(t, (&memProdutoRepo{s}).Deactivate(p.ID))

	uc := newReportUseCase(s, nil)
	movs, err := uc.HistoricoProduto(contaA, p.ID)
	require.NoError(t, err)
	assert.Len(t, movs, 1)
}

func TestResumoMovimentacao_ExcluiAjustes(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 10, true)
	movUC, _ := newMovementUseCase(s)
	ctx := context.Background()
	since := time.Now().Add(-time.Minute)

	passos := []stock.MovimentacaoInput{
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoEntrada, Quantidade: 20},
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 12},
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoAjuste, Quantidade: 100},
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 8},
	}
	for _, in := range passos {
		_, err := movUC.Register(ctx, in)
		require.NoError(t, err)
	}

	uc := newReportUseCase(s, nil)
	resumo, err := uc.ResumoMovimentacao(contaA, p.ID, since)
	require.NoError(t, err)
	assert.Equal(t, 20, resumo.TotalEntradas)
	assert.Equal(t, 20, resumo.TotalSaidas)
}

func TestResumoMovimentacao_ChecaDono(t *testing.T) {
	s := newMemStore()
	alheio := s.addProduto(contaB, 10, true)
	uc := newReportUseCase(s, nil)

	_, err := uc.ResumoMovimentacao(contaA, alheio.ID, time.Now().AddDate(0, 0, -30))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRelatorio_AgregaValorEAlertas(t *testing.T) {
	s := newMemStore()
	baixo := s.addProduto(contaA, 1, true)
	venc := s.addProduto(contaA, 10, true)
	amanha := time.Now().AddDate(0, 0, 1)
	s.mu.Lock()
	s.produtos[venc.ID].DataValidade = &amanha
	s.mu.Unlock()

	uc := newReportUseCase(s, &memAnalyticsRepo{valorEstoque: decimal.NewFromFloat(1234.56)})
	rel, err := uc.Relatorio(context.Background(), contaA)
	require.NoError(t, err)
	require.Len(t, rel.EstoqueBaixo, 1)
	assert.Equal(t, baixo.ID, rel.EstoqueBaixo[0].ID)
	require.Len(t, rel.Vencendo, 1)
	assert.Equal(t, venc.ID, rel.Vencendo[0].ID)
	assert.True(t, rel.ValorTotal.Equal(decimal.NewFromFloat(1234.56)))
	assert.WithinDuration(t, time.Now(), rel.GeradoEm, time.Minute)
}
