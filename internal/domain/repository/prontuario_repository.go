package repository

import "github.com/clinivet/clinivet-api/internal/domain/entity"

// ProntuarioRepository define o porto de persistência para Prontuario.
type ProntuarioRepository interface {
	Create(prontuario *entity.Prontuario) error
	GetByID(id string) (*entity.Prontuario, error)
	Update(prontuario *entity.Prontuario) error
	Delete(id string) error
	ListByPaciente(pacienteID string) ([]*entity.Prontuario, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Prontuario, error)
}
