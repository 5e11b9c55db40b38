package entity

import "time"

// Papéis de usuário da aplicação.
const (
	RoleAdmin       = "admin"
	RoleVeterinario = "veterinario"
	RoleAtendente   = "atendente"
)

// Usuario representa uma conta da clínica. Todos os registros de dados
// (clientes, pacientes, produtos, movimentações...) são escopados por UserID.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nome         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
