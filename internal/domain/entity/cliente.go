package entity

import "time"

// Cliente representa o tutor de um ou mais pacientes.
type Cliente struct {
	ID        string
	UserID    string
	Nome      string
	CPF       string
	Email     string
	Telefone  string
	Endereco  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
