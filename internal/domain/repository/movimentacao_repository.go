package repository

import (
	"time"

	"github.com/clinivet/clinivet-api/internal/domain/entity"
)

// ResumoMovimentacao totais de entradas e saídas de um produto em uma janela.
// Ajustes ficam de fora: são correções, não fluxo de estoque.
type ResumoMovimentacao struct {
	TotalEntradas int
	TotalSaidas   int
}

// MovimentacaoRepository define o porto de persistência do ledger de movimentações.
// O ledger é append-only: não existem Update nem Delete.
type MovimentacaoRepository interface {
	Create(mov *entity.MovimentacaoEstoque) error
	GetByID(id string) (*entity.MovimentacaoEstoque, error)
	// ListByProduto devolve todas as movimentações do produto em ordem de criação ascendente.
	ListByProduto(produtoID string) ([]*entity.MovimentacaoEstoque, error)
	// ListRecentes devolve movimentações criadas a partir de since, de todos os produtos da conta.
	ListRecentes(userID string, since time.Time, limit, offset int) ([]*entity.MovimentacaoEstoque, error)
	// Resumo soma entradas e saídas do produto a partir de since (ajustes excluídos).
	Resumo(produtoID string, since time.Time) (*ResumoMovimentacao, error)
}
