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

// ProdutoUseCase casos de uso CRUD para produtos de estoque.
// QuantidadeAtual só muda via movimentações (stock.RegisterMovementUseCase):
// nem Create com valor negativo, nem Update tocam nessa coluna depois do
// cadastro inicial. A exclusão é lógica (Deactivate).
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cadastra um produto. A quantidade informada vira o saldo inicial do ledger.
func (uc *ProdutoUseCase) Create(userID string, in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome == "" || in.Categoria == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantidadeAtual < 0 || in.QuantidadeMinima < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.UnidadeMedida == "" {
		in.UnidadeMedida = entity.UnidadeMedidaUnidade
	}
	if !entity.UnidadeMedidaValida(in.UnidadeMedida) {
		return nil, domain.ErrInvalidInput
	}
	if negativo(in.PrecoCusto) || negativo(in.PrecoVenda) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	produto := &entity.Produto{
		ID:               uuid.New().String(),
		UserID:           userID,
		Nome:             in.Nome,
		Categoria:        in.Categoria,
		Descricao:        in.Descricao,
		UnidadeMedida:    in.UnidadeMedida,
		QuantidadeAtual:  in.QuantidadeAtual,
		QuantidadeMinima: in.QuantidadeMinima,
		PrecoCusto:       in.PrecoCusto,
		PrecoVenda:       in.PrecoVenda,
		Fornecedor:       in.Fornecedor,
		DataValidade:     in.DataValidade,
		Lote:             in.Lote,
		CodigoBarras:     in.CodigoBarras,
		Ativo:            true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// GetByID obtém um produto da conta.
func (uc *ProdutoUseCase) GetByID(userID, id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil || produto.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return toProdutoResponse(produto), nil
}

// Update atualiza campos cadastrais. Não altera QuantidadeAtual (só via movimentação).
func (uc *ProdutoUseCase) Update(userID, id string, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil || produto.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, domain.ErrInvalidInput
		}
		produto.Nome = *in.Nome
	}
	if in.Categoria != nil {
		if *in.Categoria == "" {
			return nil, domain.ErrInvalidInput
		}
		produto.Categoria = *in.Categoria
	}
	if in.Descricao != nil {
		produto.Descricao = *in.Descricao
	}
	if in.UnidadeMedida != nil {
		if !entity.UnidadeMedidaValida(*in.UnidadeMedida) {
			return nil, domain.ErrInvalidInput
		}
		produto.UnidadeMedida = *in.UnidadeMedida
	}
	if in.QuantidadeMinima != nil {
		if *in.QuantidadeMinima < 0 {
			return nil, domain.ErrInvalidQuantity
		}
		produto.QuantidadeMinima = *in.QuantidadeMinima
	}
	if in.PrecoCusto != nil {
		if in.PrecoCusto.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		produto.PrecoCusto = in.PrecoCusto
	}
	if in.PrecoVenda != nil {
		if in.PrecoVenda.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		produto.PrecoVenda = in.PrecoVenda
	}
	if in.Fornecedor != nil {
		produto.Fornecedor = *in.Fornecedor
	}
	if in.DataValidade != nil {
		produto.DataValidade = in.DataValidade
	}
	if in.Lote != nil {
		produto.Lote = *in.Lote
	}
	if in.CodigoBarras != nil {
		produto.CodigoBarras = *in.CodigoBarras
	}
	produto.UpdatedAt = time.Now()
	if err := uc.repo.Update(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// Deactivate faz a exclusão lógica (ativo=false). As movimentações históricas
// do produto permanecem no ledger.
func (uc *ProdutoUseCase) Deactivate(userID, id string) error {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil || produto.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

// List devolve os produtos ativos da conta com filtro opcional de categoria/nome.
func (uc *ProdutoUseCase) List(userID string, f repository.ProdutoFilter) ([]dto.ProdutoResponse, error) {
	produtos, err := uc.repo.ListByUser(userID, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, *toProdutoResponse(p))
	}
	return out, nil
}

func negativo(d *decimal.Decimal) bool {
	return d != nil && d.IsNegative()
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProdutoResponse{
		ID:               p.ID,
		Nome:             p.Nome,
		Categoria:        p.Categoria,
		Descricao:        p.Descricao,
		UnidadeMedida:    p.UnidadeMedida,
		QuantidadeAtual:  p.QuantidadeAtual,
		QuantidadeMinima: p.QuantidadeMinima,
		PrecoCusto:       p.PrecoCusto,
		PrecoVenda:       p.PrecoVenda,
		Fornecedor:       p.Fornecedor,
		DataValidade:     p.DataValidade,
		Lote:             p.Lote,
		CodigoBarras:     p.CodigoBarras,
		Ativo:            p.Ativo,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
