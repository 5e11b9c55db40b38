package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProdutoRequest body para POST /api/produtos.
// QuantidadeAtual aqui é a quantidade inicial; depois disso só muda via movimentação.
type CreateProdutoRequest struct {
	Nome             string           `json:"nome"`
	Categoria        string           `json:"categoria"`
	Descricao        string           `json:"descricao,omitempty"`
	UnidadeMedida    string           `json:"unidade_medida"`
	QuantidadeAtual  int              `json:"quantidade_atual"`
	QuantidadeMinima int              `json:"quantidade_minima"`
	PrecoCusto       *decimal.Decimal `json:"preco_custo,omitempty"`
	PrecoVenda       *decimal.Decimal `json:"preco_venda,omitempty"`
	Fornecedor       string           `json:"fornecedor,omitempty"`
	DataValidade     *time.Time       `json:"data_validade,omitempty"`
	Lote             string           `json:"lote,omitempty"`
	CodigoBarras     string           `json:"codigo_barras,omitempty"`
}

// UpdateProdutoRequest body para PUT /api/produtos/:id. Campos nil não mudam.
// Não existe campo de quantidade: quantidade_atual só muda via movimentações.
type UpdateProdutoRequest struct {
	Nome             *string          `json:"nome,omitempty"`
	Categoria        *string          `json:"categoria,omitempty"`
	Descricao        *string          `json:"descricao,omitempty"`
	UnidadeMedida    *string          `json:"unidade_medida,omitempty"`
	QuantidadeMinima *int             `json:"quantidade_minima,omitempty"`
	PrecoCusto       *decimal.Decimal `json:"preco_custo,omitempty"`
	PrecoVenda       *decimal.Decimal `json:"preco_venda,omitempty"`
	Fornecedor       *string          `json:"fornecedor,omitempty"`
	DataValidade     *time.Time       `json:"data_validade,omitempty"`
	Lote             *string          `json:"lote,omitempty"`
	CodigoBarras     *string          `json:"codigo_barras,omitempty"`
}

// ProdutoResponse representação de produto nas respostas.
type ProdutoResponse struct {
	ID               string           `json:"id"`
	Nome             string           `json:"nome"`
	Categoria        string           `json:"categoria"`
	Descricao        string           `json:"descricao,omitempty"`
	UnidadeMedida    string           `json:"unidade_medida"`
	QuantidadeAtual  int              `json:"quantidade_atual"`
	QuantidadeMinima int              `json:"quantidade_minima"`
	PrecoCusto       *decimal.Decimal `json:"preco_custo,omitempty"`
	PrecoVenda       *decimal.Decimal `json:"preco_venda,omitempty"`
	Fornecedor       string           `json:"fornecedor,omitempty"`
	DataValidade     *time.Time       `json:"data_validade,omitempty"`
	Lote             string           `json:"lote,omitempty"`
	CodigoBarras     string           `json:"codigo_barras,omitempty"`
	Ativo            bool             `json:"ativo"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
