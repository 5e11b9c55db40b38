package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

// AgendamentoUseCase casos de uso CRUD para agendamentos.
type AgendamentoUseCase struct {
	repo         repository.AgendamentoRepository
	pacienteRepo repository.PacienteRepository
}

// NewAgendamentoUseCase constrói o caso de uso.
func NewAgendamentoUseCase(repo repository.AgendamentoRepository, pacienteRepo repository.PacienteRepository) *AgendamentoUseCase {
	return &AgendamentoUseCase{repo: repo, pacienteRepo: pacienteRepo}
}

// Create marca um serviço para um paciente da conta. Status padrão: agendado.
func (uc *AgendamentoUseCase) Create(userID string, in dto.CreateAgendamentoRequest) (*dto.AgendamentoResponse, error) {
	if in.PacienteID == "" || in.DataHora.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TipoServicoValido(in.TipoServico) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.AgendamentoAgendado
	}
	if !entity.StatusAgendamentoValido(status) {
		return nil, domain.ErrInvalidInput
	}
	paciente, err := uc.pacienteRepo.GetByID(in.PacienteID)
	if err != nil {
		return nil, err
	}
	if paciente == nil || paciente.UserID != userID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	agendamento := &entity.Agendamento{
		ID:          uuid.New().String(),
		UserID:      userID,
		PacienteID:  in.PacienteID,
		DataHora:    in.DataHora,
		TipoServico: in.TipoServico,
		Status:      status,
		Observacoes: in.Observacoes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(agendamento); err != nil {
		return nil, err
	}
	return toAgendamentoResponse(agendamento), nil
}

// GetByID obtém um agendamento da conta.
func (uc *AgendamentoUseCase) GetByID(userID, id string) (*dto.AgendamentoResponse, error) {
	agendamento, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if agendamento == nil || agendamento.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return toAgendamentoResponse(agendamento), nil
}

// Update remarca ou muda o status de um agendamento.
func (uc *AgendamentoUseCase) Update(userID, id string, in dto.UpdateAgendamentoRequest) (*dto.AgendamentoResponse, error) {
	agendamento, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if agendamento == nil || agendamento.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if in.DataHora != nil {
		agendamento.DataHora = *in.DataHora
	}
	if in.TipoServico != nil {
		if !entity.TipoServicoValido(*in.TipoServico) {
			return nil, domain.ErrInvalidInput
		}
		agendamento.TipoServico = *in.TipoServico
	}
	if in.Status != nil {
		if !entity.StatusAgendamentoValido(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		agendamento.Status = *in.Status
	}
	if in.Observacoes != nil {
		agendamento.Observacoes = *in.Observacoes
	}
	agendamento.UpdatedAt = time.Now()
	if err := uc.repo.Update(agendamento); err != nil {
		return nil, err
	}
	return toAgendamentoResponse(agendamento), nil
}

// Delete remove um agendamento.
func (uc *AgendamentoUseCase) Delete(userID, id string) error {
	agendamento, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if agendamento == nil || agendamento.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List devolve os agendamentos da conta em um intervalo opcional de datas.
func (uc *AgendamentoUseCase) List(userID string, from, to *time.Time) ([]dto.AgendamentoResponse, error) {
	agendamentos, err := uc.repo.ListByUser(userID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AgendamentoResponse, 0, len(agendamentos))
	for _, a := range agendamentos {
		out = append(out, *toAgendamentoResponse(a))
	}
	return out, nil
}

func toAgendamentoResponse(a *entity.Agendamento) *dto.AgendamentoResponse {
	if a == nil {
		return nil
	}
	return &dto.AgendamentoResponse{
		ID:          a.ID,
		PacienteID:  a.PacienteID,
		DataHora:    a.DataHora,
		TipoServico: a.TipoServico,
		Status:      a.Status,
		Observacoes: a.Observacoes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
