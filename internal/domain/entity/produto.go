package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida aceitas para produtos de estoque.
const (
	UnidadeMedidaUnidade = "unidade"
	UnidadeMedidaML      = "ml"
	UnidadeMedidaMG      = "mg"
	UnidadeMedidaG       = "g"
	UnidadeMedidaKG      = "kg"
	UnidadeMedidaLitro   = "litro"
)

// UnidadeMedidaValida verifica se a unidade de medida é uma das aceitas.
func UnidadeMedidaValida(u string) bool {
	switch u {
	case UnidadeMedidaUnidade, UnidadeMedidaML, UnidadeMedidaMG, UnidadeMedidaG, UnidadeMedidaKG, UnidadeMedidaLitro:
		return true
	}
	return false
}

// Produto representa um item do estoque da clínica (medicamento, vacina, insumo).
// QuantidadeAtual só muda via movimentações (RegisterMovementUseCase); a exclusão
// é lógica (Ativo=false) para preservar o histórico de movimentações.
type Produto struct {
	ID               string
	UserID           string // conta dona do registro
	Nome             string
	Categoria        string
	Descricao        string
	UnidadeMedida    string
	QuantidadeAtual  int
	QuantidadeMinima int
	PrecoCusto       *decimal.Decimal // opcional
	PrecoVenda       *decimal.Decimal // opcional
	Fornecedor       string
	DataValidade     *time.Time // opcional; nil = sem validade
	Lote             string
	CodigoBarras     string
	Ativo            bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
