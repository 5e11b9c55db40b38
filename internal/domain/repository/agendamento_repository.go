package repository

import (
	"time"

	"github.com/clinivet/clinivet-api/internal/domain/entity"
)

// AgendamentoRepository define o porto de persistência para Agendamento.
type AgendamentoRepository interface {
	Create(agendamento *entity.Agendamento) error
	GetByID(id string) (*entity.Agendamento, error)
	Update(agendamento *entity.Agendamento) error
	Delete(id string) error
	ListByUser(userID string, from, to *time.Time) ([]*entity.Agendamento, error)
	ListByPaciente(pacienteID string) ([]*entity.Agendamento, error)
}
