package entity

import "time"

// Prontuario é o registro médico de uma consulta de um paciente.
type Prontuario struct {
	ID             string
	UserID         string
	PacienteID     string
	DataConsulta   time.Time
	MotivoConsulta string
	Sintomas       string
	Diagnostico    string
	Tratamento     string
	Medicamentos   string
	PesoAtual      *float64 // kg, opcional
	Temperatura    *float64 // ºC, opcional
	Observacoes    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
