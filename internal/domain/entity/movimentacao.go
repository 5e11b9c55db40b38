package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovimentacaoEntrada = "entrada" // soma quantidade relativa
	MovimentacaoSaida   = "saida"   // subtrai quantidade relativa
	MovimentacaoAjuste  = "ajuste"  // define quantidade absoluta (alvo)
)

// TipoMovimentacaoValido verifica se o tipo é um dos reconhecidos.
func TipoMovimentacaoValido(t string) bool {
	return t == MovimentacaoEntrada || t == MovimentacaoSaida || t == MovimentacaoAjuste
}

// MovimentacaoEstoque é um registro imutável do ledger de estoque.
// Invariante: QuantidadeNova = QuantidadeAnterior + delta, onde delta depende do
// tipo (entrada: +Quantidade, saida: -Quantidade, ajuste: Quantidade - QuantidadeAnterior).
// Nunca é alterada nem removida após criada.
type MovimentacaoEstoque struct {
	ID                 string
	UserID             string
	ProdutoID          string
	Tipo               string
	Quantidade         int // magnitude (entrada/saida) ou alvo absoluto (ajuste)
	QuantidadeAnterior int
	QuantidadeNova     int
	Motivo             string
	Observacoes        string
	AgendamentoID      *string // opcional: consumo vinculado a um atendimento
	CreatedAt          time.Time
}

// Delta devolve a variação efetivamente aplicada ao estoque.
func (m *MovimentacaoEstoque) Delta() int {
	return m.QuantidadeNova - m.QuantidadeAnterior
}
