package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransacaoRequest body para POST /api/transacoes.
type CreateTransacaoRequest struct {
	Tipo           string          `json:"tipo"` // receita | despesa
	Categoria      string          `json:"categoria"`
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	DataTransacao  *time.Time      `json:"data_transacao,omitempty"` // padrão: agora
	FormaPagamento string          `json:"forma_pagamento,omitempty"`
	Status         string          `json:"status,omitempty"` // padrão: confirmado
	PacienteID     *string         `json:"paciente_id,omitempty"`
	AgendamentoID  *string         `json:"agendamento_id,omitempty"`
	Observacoes    string          `json:"observacoes,omitempty"`
}

// UpdateTransacaoRequest body para PUT /api/transacoes/:id. Campos nil não mudam.
type UpdateTransacaoRequest struct {
	Categoria      *string          `json:"categoria,omitempty"`
	Descricao      *string          `json:"descricao,omitempty"`
	Valor          *decimal.Decimal `json:"valor,omitempty"`
	DataTransacao  *time.Time       `json:"data_transacao,omitempty"`
	FormaPagamento *string          `json:"forma_pagamento,omitempty"`
	Status         *string          `json:"status,omitempty"`
	Observacoes    *string          `json:"observacoes,omitempty"`
}

// TransacaoResponse representação de transação nas respostas.
type TransacaoResponse struct {
	ID             string          `json:"id"`
	Tipo           string          `json:"tipo"`
	Categoria      string          `json:"categoria"`
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	DataTransacao  time.Time       `json:"data_transacao"`
	FormaPagamento string          `json:"forma_pagamento,omitempty"`
	Status         string          `json:"status"`
	PacienteID     *string         `json:"paciente_id,omitempty"`
	AgendamentoID  *string         `json:"agendamento_id,omitempty"`
	Observacoes    string          `json:"observacoes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateCategoriaRequest body para POST /api/categorias.
type CreateCategoriaRequest struct {
	Nome string `json:"nome"`
	Tipo string `json:"tipo"` // receita | despesa
	Cor  string `json:"cor,omitempty"`
}

// CategoriaResponse representação de categoria financeira nas respostas.
type CategoriaResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Tipo string `json:"tipo"`
	Cor  string `json:"cor,omitempty"`
}
