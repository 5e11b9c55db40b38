package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes (tutores).
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create cadastra um cliente. CPF é único por conta.
func (uc *ClienteUseCase) Create(userID string, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nome == "" || in.CPF == "" || in.Email == "" || in.Telefone == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCPF(userID, in.CPF)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		UserID:    userID,
		Nome:      in.Nome,
		CPF:       in.CPF,
		Email:     in.Email,
		Telefone:  in.Telefone,
		Endereco:  in.Endereco,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtém um cliente da conta.
func (uc *ClienteUseCase) GetByID(userID, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil || cliente.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(cliente), nil
}

// Update atualiza dados cadastrais. CPF não muda depois do cadastro.
func (uc *ClienteUseCase) Update(userID, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil || cliente.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, domain.ErrInvalidInput
		}
		cliente.Nome = *in.Nome
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Telefone != nil {
		cliente.Telefone = *in.Telefone
	}
	if in.Endereco != nil {
		cliente.Endereco = *in.Endereco
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete remove um cliente.
func (uc *ClienteUseCase) Delete(userID, id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil || cliente.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List devolve os clientes da conta, com filtro opcional por substring do nome.
func (uc *ClienteUseCase) List(userID, nome string) ([]dto.ClienteResponse, error) {
	clientes, err := uc.repo.ListByUser(userID, nome)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, *toClienteResponse(c))
	}
	return out, nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		CPF:       c.CPF,
		Email:     c.Email,
		Telefone:  c.Telefone,
		Endereco:  c.Endereco,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
