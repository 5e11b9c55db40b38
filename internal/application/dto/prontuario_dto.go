package dto

import "time"

// CreateProntuarioRequest body para POST /api/prontuarios.
type CreateProntuarioRequest struct {
	PacienteID     string     `json:"paciente_id"`
	DataConsulta   *time.Time `json:"data_consulta,omitempty"` // padrão: agora
	MotivoConsulta string     `json:"motivo_consulta"`
	Sintomas       string     `json:"sintomas,omitempty"`
	Diagnostico    string     `json:"diagnostico,omitempty"`
	Tratamento     string     `json:"tratamento,omitempty"`
	Medicamentos   string     `json:"medicamentos,omitempty"`
	PesoAtual      *float64   `json:"peso_atual,omitempty"`
	Temperatura    *float64   `json:"temperatura,omitempty"`
	Observacoes    string     `json:"observacoes,omitempty"`
}

// UpdateProntuarioRequest body para PUT /api/prontuarios/:id. Campos nil não mudam.
type UpdateProntuarioRequest struct {
	MotivoConsulta *string  `json:"motivo_consulta,omitempty"`
	Sintomas       *string  `json:"sintomas,omitempty"`
	Diagnostico    *string  `json:"diagnostico,omitempty"`
	Tratamento     *string  `json:"tratamento,omitempty"`
	Medicamentos   *string  `json:"medicamentos,omitempty"`
	PesoAtual      *float64 `json:"peso_atual,omitempty"`
	Temperatura    *float64 `json:"temperatura,omitempty"`
	Observacoes    *string  `json:"observacoes,omitempty"`
}

// ProntuarioResponse representação de prontuário nas respostas.
type ProntuarioResponse struct {
	ID             string    `json:"id"`
	PacienteID     string    `json:"paciente_id"`
	DataConsulta   time.Time `json:"data_consulta"`
	MotivoConsulta string    `json:"motivo_consulta"`
	Sintomas       string    `json:"sintomas,omitempty"`
	Diagnostico    string    `json:"diagnostico,omitempty"`
	Tratamento     string    `json:"tratamento,omitempty"`
	Medicamentos   string    `json:"medicamentos,omitempty"`
	PesoAtual      *float64  `json:"peso_atual,omitempty"`
	Temperatura    *float64  `json:"temperatura,omitempty"`
	Observacoes    string    `json:"observacoes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
