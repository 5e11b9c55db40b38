package repository

import "github.com/clinivet/clinivet-api/internal/domain/entity"

// PacienteRepository define o porto de persistência para Paciente.
type PacienteRepository interface {
	Create(paciente *entity.Paciente) error
	GetByID(id string) (*entity.Paciente, error)
	Update(paciente *entity.Paciente) error
	Delete(id string) error
	ListByUser(userID string) ([]*entity.Paciente, error)
	ListByCliente(clienteID string) ([]*entity.Paciente, error)
}
