package entity

import "time"

// Paciente representa um animal atendido pela clínica, vinculado a um Cliente (tutor).
type Paciente struct {
	ID        string
	UserID    string
	ClienteID string
	Nome      string
	Especie   string
	Raca      string
	Idade     *int     // anos, opcional
	Peso      *float64 // kg, opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}
