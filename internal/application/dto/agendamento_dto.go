package dto

import "time"

// CreateAgendamentoRequest body para POST /api/agendamentos.
type CreateAgendamentoRequest struct {
	PacienteID  string    `json:"paciente_id"`
	DataHora    time.Time `json:"data_hora"`
	TipoServico string    `json:"tipo_servico"`
	Status      string    `json:"status,omitempty"` // padrão: agendado
	Observacoes string    `json:"observacoes,omitempty"`
}

// UpdateAgendamentoRequest body para PUT /api/agendamentos/:id. Campos nil não mudam.
type UpdateAgendamentoRequest struct {
	DataHora    *time.Time `json:"data_hora,omitempty"`
	TipoServico *string    `json:"tipo_servico,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Observacoes *string    `json:"observacoes,omitempty"`
}

// AgendamentoResponse representação de agendamento nas respostas.
type AgendamentoResponse struct {
	ID          string    `json:"id"`
	PacienteID  string    `json:"paciente_id"`
	DataHora    time.Time `json:"data_hora"`
	TipoServico string    `json:"tipo_servico"`
	Status      string    `json:"status"`
	Observacoes string    `json:"observacoes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
