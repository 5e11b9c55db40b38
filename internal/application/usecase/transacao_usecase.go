package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

// TransacaoUseCase casos de uso CRUD para transações financeiras e categorias.
type TransacaoUseCase struct {
	repo            repository.TransacaoRepository
	categoriaRepo   repository.CategoriaRepository
	pacienteRepo    repository.PacienteRepository
	agendamentoRepo repository.AgendamentoRepository
}

// NewTransacaoUseCase constrói o caso de uso.
func NewTransacaoUseCase(
	repo repository.TransacaoRepository,
	categoriaRepo repository.CategoriaRepository,
	pacienteRepo repository.PacienteRepository,
	agendamentoRepo repository.AgendamentoRepository,
) *TransacaoUseCase {
	return &TransacaoUseCase{
		repo:            repo,
		categoriaRepo:   categoriaRepo,
		pacienteRepo:    pacienteRepo,
		agendamentoRepo: agendamentoRepo,
	}
}

// Create registra uma receita ou despesa. Vínculos opcionais com paciente e
// agendamento são validados contra a conta.
func (uc *TransacaoUseCase) Create(userID string, in dto.CreateTransacaoRequest) (*dto.TransacaoResponse, error) {
	if in.Tipo != entity.TransacaoReceita && in.Tipo != entity.TransacaoDespesa {
		return nil, domain.ErrInvalidInput
	}
	if in.Categoria == "" || in.Descricao == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Valor.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	forma := in.FormaPagamento
	if forma == "" {
		forma = entity.PagamentoDinheiro
	}
	if !entity.FormaPagamentoValida(forma) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.TransacaoConfirmada
	}
	if status != entity.TransacaoPendente && status != entity.TransacaoConfirmada && status != entity.TransacaoCancelada {
		return nil, domain.ErrInvalidInput
	}
	if in.PacienteID != nil {
		paciente, err := uc.pacienteRepo.GetByID(*in.PacienteID)
		if err != nil {
			return nil, err
		}
		if paciente == nil || paciente.UserID != userID {
			return nil, domain.ErrNotFound
		}
	}
	if in.AgendamentoID != nil {
		agendamento, err := uc.agendamentoRepo.GetByID(*in.AgendamentoID)
		if err != nil {
			return nil, err
		}
		if agendamento == nil || agendamento.UserID != userID {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	dataTransacao := now
	if in.DataTransacao != nil {
		dataTransacao = *in.DataTransacao
	}
	t := &entity.TransacaoFinanceira{
		ID:             uuid.New().String(),
		UserID:         userID,
		Tipo:           in.Tipo,
		Categoria:      in.Categoria,
		Descricao:      in.Descricao,
		Valor:          in.Valor,
		DataTransacao:  dataTransacao,
		FormaPagamento: forma,
		Status:         status,
		PacienteID:     in.PacienteID,
		AgendamentoID:  in.AgendamentoID,
		Observacoes:    in.Observacoes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return toTransacaoResponse(t), nil
}

// GetByID obtém uma transação da conta.
func (uc *TransacaoUseCase) GetByID(userID, id string) (*dto.TransacaoResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil || t.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return toTransacaoResponse(t), nil
}

// Update atualiza uma transação. O tipo (receita/despesa) não muda.
func (uc *TransacaoUseCase) Update(userID, id string, in dto.UpdateTransacaoRequest) (*dto.TransacaoResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil || t.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if in.Categoria != nil {
		if *in.Categoria == "" {
			return nil, domain.ErrInvalidInput
		}
		t.Categoria = *in.Categoria
	}
	if in.Descricao != nil {
		t.Descricao = *in.Descricao
	}
	if in.Valor != nil {
		if !in.Valor.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		t.Valor = *in.Valor
	}
	if in.DataTransacao != nil {
		t.DataTransacao = *in.DataTransacao
	}
	if in.FormaPagamento != nil {
		if !entity.FormaPagamentoValida(*in.FormaPagamento) {
			return nil, domain.ErrInvalidInput
		}
		t.FormaPagamento = *in.FormaPagamento
	}
	if in.Status != nil {
		if *in.Status != entity.TransacaoPendente && *in.Status != entity.TransacaoConfirmada && *in.Status != entity.TransacaoCancelada {
			return nil, domain.ErrInvalidInput
		}
		t.Status = *in.Status
	}
	if in.Observacoes != nil {
		t.Observacoes = *in.Observacoes
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return toTransacaoResponse(t), nil
}

// Delete remove uma transação.
func (uc *TransacaoUseCase) Delete(userID, id string) error {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil || t.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List devolve as transações da conta com filtros opcionais.
func (uc *TransacaoUseCase) List(userID string, f repository.TransacaoFilter) ([]dto.TransacaoResponse, error) {
	transacoes, err := uc.repo.ListByUser(userID, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransacaoResponse, 0, len(transacoes))
	for _, t := range transacoes {
		out = append(out, *toTransacaoResponse(t))
	}
	return out, nil
}

// CreateCategoria cadastra uma categoria financeira.
func (uc *TransacaoUseCase) CreateCategoria(userID string, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.TransacaoReceita && in.Tipo != entity.TransacaoDespesa {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.CategoriaFinanceira{
		ID:        uuid.New().String(),
		UserID:    userID,
		Nome:      in.Nome,
		Tipo:      in.Tipo,
		Cor:       in.Cor,
		CreatedAt: time.Now(),
	}
	if err := uc.categoriaRepo.Create(c); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: c.ID, Nome: c.Nome, Tipo: c.Tipo, Cor: c.Cor}, nil
}

// ListCategorias devolve as categorias financeiras da conta.
func (uc *TransacaoUseCase) ListCategorias(userID string) ([]dto.CategoriaResponse, error) {
	categorias, err := uc.categoriaRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, dto.CategoriaResponse{ID: c.ID, Nome: c.Nome, Tipo: c.Tipo, Cor: c.Cor})
	}
	return out, nil
}

func toTransacaoResponse(t *entity.TransacaoFinanceira) *dto.TransacaoResponse {
	if t == nil {
		return nil
	}
	return &dto.TransacaoResponse{
		ID:             t.ID,
		Tipo:           t.Tipo,
		Categoria:      t.Categoria,
		Descricao:      t.Descricao,
		Valor:          t.Valor,
		DataTransacao:  t.DataTransacao,
		FormaPagamento: t.FormaPagamento,
		Status:         t.Status,
		PacienteID:     t.PacienteID,
		AgendamentoID:  t.AgendamentoID,
		Observacoes:    t.Observacoes,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
