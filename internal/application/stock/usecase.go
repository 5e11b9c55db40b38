package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

// RegisterMovementUseCase é o único caminho autorizado para alterar a
// quantidade_atual de um produto. Registra movimentações (entrada, saida,
// ajuste) de forma transacional, com bloqueio de linha (SELECT FOR UPDATE)
// e Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner        TxRunner
	produtoRepo     repository.ProdutoRepository
	agendamentoRepo repository.AgendamentoRepository
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	produtoRepo repository.ProdutoRepository,
	agendamentoRepo repository.AgendamentoRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:        txRunner,
		produtoRepo:     produtoRepo,
		agendamentoRepo: agendamentoRepo,
	}
}

// MovimentacaoInput entrada para registrar uma movimentação de estoque.
// Para entrada/saida, Quantidade é a magnitude relativa (> 0).
// Para ajuste, Quantidade é o novo valor absoluto do estoque (>= 0) — não um
// delta. A assimetria vem do comportamento observado da tela de movimentações.
type MovimentacaoInput struct {
	UserID        string
	ProdutoID     string
	Tipo          string
	Quantidade    int
	Motivo        string
	Observacoes   string
	AgendamentoID *string
}

// Register valida a movimentação, abre uma transação, bloqueia a linha do
// produto, grava o registro no ledger e atualiza a quantidade — tudo ou nada.
//
// Erros: domain.ErrInvalidInput (tipo desconhecido, produto vazio),
// domain.ErrInvalidQuantity (magnitude <= 0, alvo < 0 ou estoque ficaria
// negativo), domain.ErrNotFound (produto inexistente/inativo ou agendamento
// inexistente), domain.ErrForbidden (produto de outra conta),
// domain.ErrConflict (falha de serialização concorrente).
func (uc *RegisterMovementUseCase) Register(ctx context.Context, input MovimentacaoInput) (*entity.MovimentacaoEstoque, error) {
	if input.ProdutoID == "" || input.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch input.Tipo {
	case entity.MovimentacaoEntrada, entity.MovimentacaoSaida:
		if input.Quantidade <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	case entity.MovimentacaoAjuste:
		// ajuste recebe o alvo absoluto; zero é válido (zerar o estoque)
		if input.Quantidade < 0 {
			return nil, domain.ErrInvalidQuantity
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	// Valida produto fora da transação: existência, dono e ativo.
	// A releitura com lock acontece dentro da tx.
	produto, err := uc.produtoRepo.GetByID(input.ProdutoID)
	if err != nil {
		return nil, err
	}
	if produto == nil || !produto.Ativo {
		return nil, domain.ErrNotFound
	}
	if produto.UserID != input.UserID {
		return nil, domain.ErrForbidden
	}

	if input.AgendamentoID != nil {
		ag, err := uc.agendamentoRepo.GetByID(*input.AgendamentoID)
		if err != nil {
			return nil, err
		}
		if ag == nil || ag.UserID != input.UserID {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	var registrada *entity.MovimentacaoEstoque

	// Inicia a transação; Commit se tudo ok, Rollback se algo falhar (TxRunner.Run faz isso).
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		// Bloqueia a linha do produto: movimentações concorrentes do mesmo
		// produto serializam aqui e cada uma lê a quantidade já confirmada.
		locked, err := produtoRepo.GetForUpdate(input.ProdutoID)
		if err != nil {
			return err
		}
		if locked == nil || !locked.Ativo {
			return domain.ErrNotFound
		}

		anterior := locked.QuantidadeAtual
		var nova int
		switch input.Tipo {
		case entity.MovimentacaoEntrada:
			nova = anterior + input.Quantidade
		case entity.MovimentacaoSaida:
			nova = anterior - input.Quantidade
		case entity.MovimentacaoAjuste:
			nova = input.Quantidade
		}
		if nova < 0 {
			return domain.ErrInvalidQuantity
		}

		mov := &entity.MovimentacaoEstoque{
			ID:                 uuid.New().String(),
			UserID:             input.UserID,
			ProdutoID:          input.ProdutoID,
			Tipo:               input.Tipo,
			Quantidade:         input.Quantidade,
			QuantidadeAnterior: anterior,
			QuantidadeNova:     nova,
			Motivo:             input.Motivo,
			Observacoes:        input.Observacoes,
			AgendamentoID:      input.AgendamentoID,
			CreatedAt:          now,
		}
		// Ajuste sem variação (nova == anterior) também fica no ledger:
		// a correção foi solicitada e auditada mesmo com delta zero.
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := produtoRepo.UpdateQuantidade(input.ProdutoID, nova); err != nil {
			return err
		}
		registrada = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return registrada, nil
}
