package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarMovimentacaoRequest body para POST /api/estoque/movimentacoes.
// Para tipo entrada/saida, quantidade é a magnitude relativa; para ajuste é o
// novo valor absoluto do estoque.
type RegistrarMovimentacaoRequest struct {
	ProdutoID     string  `json:"produto_id"`
	Tipo          string  `json:"tipo"` // entrada | saida | ajuste
	Quantidade    int     `json:"quantidade"`
	Motivo        string  `json:"motivo,omitempty"`
	Observacoes   string  `json:"observacoes,omitempty"`
	AgendamentoID *string `json:"agendamento_id,omitempty"`
}

// MovimentacaoResponse representação de uma movimentação nas respostas.
type MovimentacaoResponse struct {
	ID                 string    `json:"id"`
	ProdutoID          string    `json:"produto_id"`
	Tipo               string    `json:"tipo"`
	Quantidade         int       `json:"quantidade"`
	QuantidadeAnterior int       `json:"quantidade_anterior"`
	QuantidadeNova     int       `json:"quantidade_nova"`
	Motivo             string    `json:"motivo,omitempty"`
	Observacoes        string    `json:"observacoes,omitempty"`
	AgendamentoID      *string   `json:"agendamento_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// ResumoMovimentacaoResponse totais de entradas/saídas de um produto em uma janela.
type ResumoMovimentacaoResponse struct {
	ProdutoID     string    `json:"produto_id"`
	Desde         time.Time `json:"desde"`
	TotalEntradas int       `json:"total_entradas"`
	TotalSaidas   int       `json:"total_saidas"`
}

// RelatorioEstoqueResponse resumo consolidado do estoque para o dashboard/relatório.
type RelatorioEstoqueResponse struct {
	EstoqueBaixo []ProdutoResponse `json:"estoque_baixo"`
	Vencendo     []ProdutoResponse `json:"vencendo"`
	ValorTotal   decimal.Decimal   `json:"valor_total"`
	GeradoEm     time.Time         `json:"gerado_em"`
}
