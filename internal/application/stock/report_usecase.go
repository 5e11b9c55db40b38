package stock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

// StockReportUseCase deriva visões de leitura do estoque: alertas de estoque
// baixo, produtos vencendo, valor total e resumos de movimentação. Não altera
// estado; tudo sai de consultas read-only.
type StockReportUseCase struct {
	produtoRepo   repository.ProdutoRepository
	movRepo       repository.MovimentacaoRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewStockReportUseCase constrói o caso de uso.
func NewStockReportUseCase(
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentacaoRepository,
	analyticsRepo repository.AnalyticsRepository,
) *StockReportUseCase {
	return &StockReportUseCase{
		produtoRepo:   produtoRepo,
		movRepo:       movRepo,
		analyticsRepo: analyticsRepo,
	}
}

// EstoqueBaixo devolve os produtos ativos com quantidade_atual <= quantidade_minima.
// A igualdade conta como estoque baixo (limite inclusivo).
func (uc *StockReportUseCase) EstoqueBaixo(userID string) ([]*entity.Produto, error) {
	return uc.produtoRepo.ListEstoqueBaixo(userID)
}

// Vencendo devolve produtos ativos com data de validade dentro de `dias` a
// partir de agora. Produtos sem data de validade nunca aparecem.
func (uc *StockReportUseCase) Vencendo(userID string, dias int) ([]*entity.Produto, error) {
	if dias < 0 {
		return nil, domain.ErrInvalidInput
	}
	until := time.Now().AddDate(0, 0, dias)
	return uc.produtoRepo.ListVencendo(userID, until)
}

// ValorTotalEstoque soma quantidade_atual * preco_custo dos produtos ativos
// (produtos sem preço de custo contam como zero).
func (uc *StockReportUseCase) ValorTotalEstoque(ctx context.Context, userID string) (decimal.Decimal, error) {
	return uc.analyticsRepo.ValorTotalEstoque(ctx, userID)
}

// ResumoMovimentacao totaliza entradas e saídas de um produto desde `since`.
// Ajustes ficam fora dos totais.
func (uc *StockReportUseCase) ResumoMovimentacao(userID, produtoID string, since time.Time) (*repository.ResumoMovimentacao, error) {
	if err := uc.checarDono(userID, produtoID); err != nil {
		return nil, err
	}
	return uc.movRepo.Resumo(produtoID, since)
}

// HistoricoProduto devolve o ledger completo de um produto em ordem cronológica.
func (uc *StockReportUseCase) HistoricoProduto(userID, produtoID string) ([]*entity.MovimentacaoEstoque, error) {
	if err := uc.checarDono(userID, produtoID); err != nil {
		return nil, err
	}
	return uc.movRepo.ListByProduto(produtoID)
}

// checarDono garante que o produto existe e pertence à conta. Produtos
// desativados continuam consultáveis: o histórico sobrevive à exclusão lógica.
func (uc *StockReportUseCase) checarDono(userID, produtoID string) error {
	if produtoID == "" || userID == "" {
		return domain.ErrInvalidInput
	}
	produto, err := uc.produtoRepo.GetByID(produtoID)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	if produto.UserID != userID {
		return domain.ErrForbidden
	}
	return nil
}

// MovimentacoesRecentes devolve as movimentações da conta desde `since`.
func (uc *StockReportUseCase) MovimentacoesRecentes(userID string, since time.Time, limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.movRepo.ListRecentes(userID, since, limit, offset)
}

// RelatorioEstoque agrega os dados do relatório de estoque (PDF e tela).
type RelatorioEstoque struct {
	EstoqueBaixo []*entity.Produto
	Vencendo     []*entity.Produto
	ValorTotal   decimal.Decimal
	GeradoEm     time.Time
}

// Relatorio monta o relatório consolidado de estoque da conta.
// Produtos vencendo consideram a janela padrão de 30 dias.
func (uc *StockReportUseCase) Relatorio(ctx context.Context, userID string) (*RelatorioEstoque, error) {
	baixo, err := uc.produtoRepo.ListEstoqueBaixo(userID)
	if err != nil {
		return nil, err
	}
	vencendo, err := uc.produtoRepo.ListVencendo(userID, time.Now().AddDate(0, 0, 30))
	if err != nil {
		return nil, err
	}
	total, err := uc.analyticsRepo.ValorTotalEstoque(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &RelatorioEstoque{
		EstoqueBaixo: baixo,
		Vencendo:     vencendo,
		ValorTotal:   total,
		GeradoEm:     time.Now(),
	}, nil
}
