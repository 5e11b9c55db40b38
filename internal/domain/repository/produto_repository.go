package repository

import (
	"time"

	"github.com/clinivet/clinivet-api/internal/domain/entity"
)

// ProdutoFilter filtro opcional do listado de produtos.
type ProdutoFilter struct {
	Categoria string // igualdade exata; vazio = todas
	Nome      string // substring case-insensitive; vazio = todos
}

// ProdutoRepository define o porto de persistência para Produto (DIP).
// QuantidadeAtual nunca é alterada via Update: apenas UpdateQuantidade, chamada
// exclusivamente pelo caso de uso de movimentações dentro de transação.
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	// GetForUpdate bloqueia a linha do produto (SELECT FOR UPDATE) para a
	// movimentação recalcular a quantidade sem lost update.
	GetForUpdate(id string) (*entity.Produto, error)
	Update(produto *entity.Produto) error
	UpdateQuantidade(produtoID string, quantidade int) error
	Deactivate(id string) error
	ListByUser(userID string, f ProdutoFilter) ([]*entity.Produto, error)
	// ListEstoqueBaixo devolve produtos ativos com quantidade_atual <= quantidade_minima.
	ListEstoqueBaixo(userID string) ([]*entity.Produto, error)
	// ListVencendo devolve produtos ativos com data_validade não nula e <= until.
	ListVencendo(userID string, until time.Time) ([]*entity.Produto, error)
}
