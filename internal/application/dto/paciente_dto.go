package dto

import "time"

// CreatePacienteRequest body para POST /api/pacientes.
type CreatePacienteRequest struct {
	ClienteID string   `json:"cliente_id"`
	Nome      string   `json:"nome"`
	Especie   string   `json:"especie"`
	Raca      string   `json:"raca,omitempty"`
	Idade     *int     `json:"idade,omitempty"`
	Peso      *float64 `json:"peso,omitempty"`
}

// UpdatePacienteRequest body para PUT /api/pacientes/:id. Campos nil não mudam.
type UpdatePacienteRequest struct {
	Nome    *string  `json:"nome,omitempty"`
	Especie *string  `json:"especie,omitempty"`
	Raca    *string  `json:"raca,omitempty"`
	Idade   *int     `json:"idade,omitempty"`
	Peso    *float64 `json:"peso,omitempty"`
}

// PacienteResponse representação de paciente nas respostas.
type PacienteResponse struct {
	ID        string    `json:"id"`
	ClienteID string    `json:"cliente_id"`
	Nome      string    `json:"nome"`
	Especie   string    `json:"especie"`
	Raca      string    `json:"raca,omitempty"`
	Idade     *int      `json:"idade,omitempty"`
	Peso      *float64  `json:"peso,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
