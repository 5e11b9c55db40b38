package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transação financeira.
const (
	TransacaoReceita = "receita"
	TransacaoDespesa = "despesa"
)

// Formas de pagamento aceitas.
const (
	PagamentoDinheiro      = "dinheiro"
	PagamentoCartaoCredito = "cartao_credito"
	PagamentoCartaoDebito  = "cartao_debito"
	PagamentoPix           = "pix"
	PagamentoTransferencia = "transferencia"
)

// Status possíveis de uma transação.
const (
	TransacaoPendente   = "pendente"
	TransacaoConfirmada = "confirmado"
	TransacaoCancelada  = "cancelado"
)

// FormaPagamentoValida verifica a forma de pagamento.
func FormaPagamentoValida(f string) bool {
	switch f {
	case PagamentoDinheiro, PagamentoCartaoCredito, PagamentoCartaoDebito, PagamentoPix, PagamentoTransferencia:
		return true
	}
	return false
}

// TransacaoFinanceira representa uma receita ou despesa da clínica.
type TransacaoFinanceira struct {
	ID             string
	UserID         string
	Tipo           string // receita | despesa
	Categoria      string
	Descricao      string
	Valor          decimal.Decimal
	DataTransacao  time.Time
	FormaPagamento string
	Status         string
	PacienteID     *string // opcional
	AgendamentoID  *string // opcional
	Observacoes    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CategoriaFinanceira agrupa transações para relatórios (ex: "Consultas", "Fornecedores").
type CategoriaFinanceira struct {
	ID        string
	UserID    string
	Nome      string
	Tipo      string // receita | despesa
	Cor       string // hex para a UI
	CreatedAt time.Time
}
