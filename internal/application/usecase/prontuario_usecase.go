package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

// ProntuarioUseCase casos de uso CRUD para prontuários médicos.
type ProntuarioUseCase struct {
	repo         repository.ProntuarioRepository
	pacienteRepo repository.PacienteRepository
}

// NewProntuarioUseCase constrói o caso de uso.
func NewProntuarioUseCase(repo repository.ProntuarioRepository, pacienteRepo repository.PacienteRepository) *ProntuarioUseCase {
	return &ProntuarioUseCase{repo: repo, pacienteRepo: pacienteRepo}
}

// Create registra uma consulta no prontuário de um paciente da conta.
func (uc *ProntuarioUseCase) Create(userID string, in dto.CreateProntuarioRequest) (*dto.ProntuarioResponse, error) {
	if in.PacienteID == "" || in.MotivoConsulta == "" {
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
	dataConsulta := now
	if in.DataConsulta != nil {
		dataConsulta = *in.DataConsulta
	}
	prontuario := &entity.Prontuario{
		ID:             uuid.New().String(),
		UserID:         userID,
		PacienteID:     in.PacienteID,
		DataConsulta:   dataConsulta,
		MotivoConsulta: in.MotivoConsulta,
		Sintomas:       in.Sintomas,
		Diagnostico:    in.Diagnostico,
		Tratamento:     in.Tratamento,
		Medicamentos:   in.Medicamentos,
		PesoAtual:      in.PesoAtual,
		Temperatura:    in.Temperatura,
		Observacoes:    in.Observacoes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(prontuario); err != nil {
		return nil, err
	}
	return toProntuarioResponse(prontuario), nil
}

// GetByID obtém um prontuário da conta.
func (uc *ProntuarioUseCase) GetByID(userID, id string) (*dto.ProntuarioResponse, error) {
	prontuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prontuario == nil || prontuario.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return toProntuarioResponse(prontuario), nil
}

// Update complementa um prontuário (diagnóstico, tratamento etc.).
func (uc *ProntuarioUseCase) Update(userID, id string, in dto.UpdateProntuarioRequest) (*dto.ProntuarioResponse, error) {
	prontuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prontuario == nil || prontuario.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if in.MotivoConsulta != nil {
		if *in.MotivoConsulta == "" {
			return nil, domain.ErrInvalidInput
		}
		prontuario.MotivoConsulta = *in.MotivoConsulta
	}
	if in.Sintomas != nil {
		prontuario.Sintomas = *in.Sintomas
	}
	if in.Diagnostico != nil {
		prontuario.Diagnostico = *in.Diagnostico
	}
	if in.Tratamento != nil {
		prontuario.Tratamento = *in.Tratamento
	}
	if in.Medicamentos != nil {
		prontuario.Medicamentos = *in.Medicamentos
	}
	if in.PesoAtual != nil {
		prontuario.PesoAtual = in.PesoAtual
	}
	if in.Temperatura != nil {
		prontuario.Temperatura = in.Temperatura
	}
	if in.Observacoes != nil {
		prontuario.Observacoes = *in.Observacoes
	}
	prontuario.UpdatedAt = time.Now()
	if err := uc.repo.Update(prontuario); err != nil {
		return nil, err
	}
	return toProntuarioResponse(prontuario), nil
}

// Delete remove um prontuário.
func (uc *ProntuarioUseCase) Delete(userID, id string) error {
	prontuario, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if prontuario == nil || prontuario.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ListByPaciente devolve o histórico de consultas de um paciente.
func (uc *ProntuarioUseCase) ListByPaciente(userID, pacienteID string) ([]dto.ProntuarioResponse, error) {
	paciente, err := uc.pacienteRepo.GetByID(pacienteID)
	if err != nil {
		return nil, err
	}
	if paciente == nil || paciente.UserID != userID {
		return nil, domain.ErrNotFound
	}
	prontuarios, err := uc.repo.ListByPaciente(pacienteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProntuarioResponse, 0, len(prontuarios))
	for _, p := range prontuarios {
		out = append(out, *toProntuarioResponse(p))
	}
	return out, nil
}

// List devolve os prontuários da conta com paginação.
func (uc *ProntuarioUseCase) List(userID string, page dto.PageRequest) ([]dto.ProntuarioResponse, error) {
	page.DefaultPage()
	prontuarios, err := uc.repo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProntuarioResponse, 0, len(prontuarios))
	for _, p := range prontuarios {
		out = append(out, *toProntuarioResponse(p))
	}
	return out, nil
}

func toProntuarioResponse(p *entity.Prontuario) *dto.ProntuarioResponse {
	if p == nil {
		return nil
	}
	return &dto.ProntuarioResponse{
		ID:             p.ID,
		PacienteID:     p.PacienteID,
		DataConsulta:   p.DataConsulta,
		MotivoConsulta: p.MotivoConsulta,
		Sintomas:       p.Sintomas,
		Diagnostico:    p.Diagnostico,
		Tratamento:     p.Tratamento,
		Medicamentos:   p.Medicamentos,
		PesoAtual:      p.PesoAtual,
		Temperatura:    p.Temperatura,
		Observacoes:    p.Observacoes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
