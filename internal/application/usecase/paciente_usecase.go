package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

// PacienteUseCase casos de uso CRUD para pacientes (animais).
type PacienteUseCase struct {
	repo        repository.PacienteRepository
	clienteRepo repository.ClienteRepository
}

// NewPacienteUseCase constrói o caso de uso.
func NewPacienteUseCase(repo repository.PacienteRepository, clienteRepo repository.ClienteRepository) *PacienteUseCase {
	return &PacienteUseCase{repo: repo, clienteRepo: clienteRepo}
}

// Create cadastra um paciente vinculado a um cliente (tutor) da mesma conta.
func (uc *PacienteUseCase) Create(userID string, in dto.CreatePacienteRequest) (*dto.PacienteResponse, error) {
	if in.Nome == "" || in.Especie == "" || in.ClienteID == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil || cliente.UserID != userID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	paciente := &entity.Paciente{
		ID:        uuid.New().String(),
		UserID:    userID,
		ClienteID: in.ClienteID,
		Nome:      in.Nome,
		Especie:   in.Especie,
		Raca:      in.Raca,
		Idade:     in.Idade,
		Peso:      in.Peso,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(paciente); err != nil {
		return nil, err
	}
	return toPacienteResponse(paciente), nil
}

// GetByID obtém um paciente da conta.
func (uc *PacienteUseCase) GetByID(userID, id string) (*dto.PacienteResponse, error) {
	paciente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if paciente == nil || paciente.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return toPacienteResponse(paciente), nil
}

// Update atualiza dados do paciente. O tutor (cliente_id) não muda.
func (uc *PacienteUseCase) Update(userID, id string, in dto.UpdatePacienteRequest) (*dto.PacienteResponse, error) {
	paciente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if paciente == nil || paciente.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, domain.ErrInvalidInput
		}
		paciente.Nome = *in.Nome
	}
	if in.Especie != nil {
		paciente.Especie = *in.Especie
	}
	if in.Raca != nil {
		paciente.Raca = *in.Raca
	}
	if in.Idade != nil {
		paciente.Idade = in.Idade
	}
	if in.Peso != nil {
		paciente.Peso = in.Peso
	}
	paciente.UpdatedAt = time.Now()
	if err := uc.repo.Update(paciente); err != nil {
		return nil, err
	}
	return toPacienteResponse(paciente), nil
}

// Delete remove um paciente.
func (uc *PacienteUseCase) Delete(userID, id string) error {
	paciente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if paciente == nil || paciente.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List devolve os pacientes da conta.
func (uc *PacienteUseCase) List(userID string) ([]dto.PacienteResponse, error) {
	pacientes, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PacienteResponse, 0, len(pacientes))
	for _, p := range pacientes {
		out = append(out, *toPacienteResponse(p))
	}
	return out, nil
}

// ListByCliente devolve os pacientes de um tutor.
func (uc *PacienteUseCase) ListByCliente(userID, clienteID string) ([]dto.PacienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil || cliente.UserID != userID {
		return nil, domain.ErrNotFound
	}
	pacientes, err := uc.repo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PacienteResponse, 0, len(pacientes))
	for _, p := range pacientes {
		out = append(out, *toPacienteResponse(p))
	}
	return out, nil
}

func toPacienteResponse(p *entity.Paciente) *dto.PacienteResponse {
	if p == nil {
		return nil
	}
	return &dto.PacienteResponse{
		ID:        p.ID,
		ClienteID: p.ClienteID,
		Nome:      p.Nome,
		Especie:   p.Especie,
		Raca:      p.Raca,
		Idade:     p.Idade,
		Peso:      p.Peso,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
