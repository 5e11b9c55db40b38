package dto

import "time"

// CreateClienteRequest body para POST /api/clientes.
type CreateClienteRequest struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco,omitempty"`
}

// UpdateClienteRequest body para PUT /api/clientes/:id. Campos nil não mudam.
type UpdateClienteRequest struct {
	Nome     *string `json:"nome,omitempty"`
	Email    *string `json:"email,omitempty"`
	Telefone *string `json:"telefone,omitempty"`
	Endereco *string `json:"endereco,omitempty"`
}

// ClienteResponse representação de cliente nas respostas.
type ClienteResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	Endereco  string    `json:"endereco,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
