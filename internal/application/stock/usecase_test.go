package stock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinivet/clinivet-api/internal/application/stock"
	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

const (
	contaA = "00000000-0000-0000-0000-00000000000a"
	contaB = "00000000-0000-0000-0000-00000000000b"
)

// memStore guarda produtos e o ledger de movimentações. O mutex protege o
// acesso concorrente aos mapas; a serialização transacional fica no memTxRunner.
type memStore struct {
	mu       sync.Mutex
	produtos map[string]*entity.Produto
	movs     []*entity.MovimentacaoEstoque
}

func newMemStore() *memStore {
	return &memStore{produtos: make(map[string]*entity.Produto)}
}

func (s *memStore) addProduto(userID string, quantidade int, ativo bool) *entity.Produto {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &entity.Produto{
		ID:               uuid.New().String(),
		UserID:           userID,
		Nome:             "Vacina V10",
		Categoria:        "vacinas",
		UnidadeMedida:    entity.UnidadeMedidaUnidade,
		QuantidadeAtual:  quantidade,
		QuantidadeMinima: 2,
		Ativo:            ativo,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	s.produtos[p.ID] = p
	return p
}

type memProdutoRepo struct{ s *memStore }

func (r *memProdutoRepo) Create(p *entity.Produto) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.produtos[p.ID] = p
	return nil
}

func (r *memProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.produtos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	return r.GetByID(id)
}

func (r *memProdutoRepo) Update(p *entity.Produto) error { return nil }

func (r *memProdutoRepo) UpdateQuantidade(produtoID string, quantidade int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.produtos[produtoID]
	if !ok {
		return domain.ErrNotFound
	}
	p.QuantidadeAtual = quantidade
	return nil
}

func (r *memProdutoRepo) Deactivate(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.produtos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Ativo = false
	return nil
}

func (r *memProdutoRepo) ListByUser(userID string, f repository.ProdutoFilter) ([]*entity.Produto, error) {
	return nil, nil
}

func (r *memProdutoRepo) ListEstoqueBaixo(userID string) ([]*entity.Produto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Produto
	for _, p := range r.s.produtos {
		if p.UserID == userID && p.Ativo && p.QuantidadeAtual <= p.QuantidadeMinima {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProdutoRepo) ListVencendo(userID string, until time.Time) ([]*entity.Produto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Produto
	for _, p := range r.s.produtos {
		if p.UserID == userID && p.Ativo && p.DataValidade != nil && !p.DataValidade.After(until) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memMovRepo struct{ s *memStore }

func (r *memMovRepo) Create(m *entity.MovimentacaoEstoque) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *m
	r.s.movs = append(r.s.movs, &cp)
	return nil
}

func (r *memMovRepo) GetByID(id string) (*entity.MovimentacaoEstoque, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.movs {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovRepo) ListByProduto(produtoID string) ([]*entity.MovimentacaoEstoque, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.MovimentacaoEstoque
	for _, m := range r.s.movs {
		if m.ProdutoID == produtoID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMovRepo) ListRecentes(userID string, since time.Time, limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	return nil, nil
}

func (r *memMovRepo) Resumo(produtoID string, since time.Time) (*repository.ResumoMovimentacao, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	resumo := &repository.ResumoMovimentacao{}
	for _, m := range r.s.movs {
		if m.ProdutoID != produtoID || m.CreatedAt.Before(since) {
			continue
		}
		switch m.Tipo {
		case entity.MovimentacaoEntrada:
			resumo.TotalEntradas += m.Quantidade
		case entity.MovimentacaoSaida:
			resumo.TotalSaidas += m.Quantidade
		}
	}
	return resumo, nil
}

type memAgendamentoRepo struct {
	agendamentos map[string]*entity.Agendamento
}

func (r *memAgendamentoRepo) Create(a *entity.Agendamento) error { return nil }
func (r *memAgendamentoRepo) GetByID(id string) (*entity.Agendamento, error) {
	a, ok := r.agendamentos[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}
func (r *memAgendamentoRepo) Update(a *entity.Agendamento) error { return nil }
func (r *memAgendamentoRepo) Delete(id string) error             { return nil }
func (r *memAgendamentoRepo) ListByUser(userID string, from, to *time.Time) ([]*entity.Agendamento, error) {
	return nil, nil
}
func (r *memAgendamentoRepo) ListByPaciente(pacienteID string) ([]*entity.Agendamento, error) {
	return nil, nil
}

// memTxRunner serializa as "transações" com um mutex próprio, imitando o
// bloqueio de linha: duas movimentações concorrentes do mesmo produto executam
// uma depois da outra e a segunda lê a quantidade já confirmada.
type memTxRunner struct {
	txMu sync.Mutex
	s    *memStore
}

func (t *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	t.txMu.Lock()
	defer t.txMu.Unlock()
	return fn(&memMovRepo{t.s}, &memProdutoRepo{t.s})
}

func newMovementUseCase(s *memStore) (*stock.RegisterMovementUseCase, *memAgendamentoRepo) {
	agRepo := &memAgendamentoRepo{agendamentos: make(map[string]*entity.Agendamento)}
	uc := stock.NewRegisterMovementUseCase(&memTxRunner{s: s}, &memProdutoRepo{s}, agRepo)
	return uc, agRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Sequência básica: entrada soma, saida subtrai, ajuste define valor absoluto
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SequenciaEntradaSaidaAjuste(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 10, true)
	uc, _ := newMovementUseCase(s)
	ctx := context.Background()

	// entrada 20: 10 -> 30
	mov, err := uc.Register(ctx, stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoEntrada, Quantidade: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, mov.QuantidadeAnterior)
	assert.Equal(t, 30, mov.QuantidadeNova)
	assert.Equal(t, 20, mov.Delta())

	// saida 12: 30 -> 18
	mov, err = uc.Register(ctx, stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, mov.QuantidadeAnterior)
	assert.Equal(t, 18, mov.QuantidadeNova)
	assert.Equal(t, -12, mov.Delta())

	// ajuste para 5 (valor absoluto, não delta): 18 -> 5
	mov, err = uc.Register(ctx, stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoAjuste, Quantidade: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 18, mov.QuantidadeAnterior)
	assert.Equal(t, 5, mov.QuantidadeNova)
	assert.Equal(t, -13, mov.Delta())

	atual, err := (&memProdutoRepo{s}).GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, atual.QuantidadeAtual)
}

// Reaplicar os deltas do ledger sobre a quantidade inicial reconstrói a atual.
func TestRegister_LedgerReconstroiQuantidade(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 7, true)
	uc, _ := newMovementUseCase(s)
	ctx := context.Background()

	passos := []stock.MovimentacaoInput{
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoEntrada, Quantidade: 3},
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 4},
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoAjuste, Quantidade: 20},
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 20},
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoEntrada, Quantidade: 1},
	}
	for _, in := range passos {
		_, err := uc.Register(ctx, in)
		require.NoError(t, err)
	}

	movs, err := (&memMovRepo{s}).ListByProduto(p.ID)
	require.NoError(t, err)
	require.Len(t, movs, len(passos))

	replay := 7
	for _, m := range movs {
		assert.Equal(t, replay, m.QuantidadeAnterior, "cada registro parte da quantidade confirmada anterior")
		replay += m.Delta()
		assert.Equal(t, replay, m.QuantidadeNova)
	}

	atual, _ := (&memProdutoRepo{s}).GetByID(p.ID)
	assert.Equal(t, replay, atual.QuantidadeAtual, "reaplicar os deltas reconstrói a quantidade atual")
	assert.Equal(t, 1, atual.QuantidadeAtual)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validações de quantidade
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SaidaMaiorQueEstoque_NadaEGravado(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 10, true)
	uc, _ := newMovementUseCase(s)

	_, err := uc.Register(context.Background(), stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 11,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	// nem movimentação nem quantidade: tudo ou nada
	movs, _ := (&memMovRepo{s}).ListByProduto(p.ID)
	assert.Empty(t, movs)
	atual, _ := (&memProdutoRepo{s}).GetByID(p.ID)
	assert.Equal(t, 10, atual.QuantidadeAtual)
}

func TestRegister_SaidaExataZeraEstoque(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 10, true)
	uc, _ := newMovementUseCase(s)

	mov, err := uc.Register(context.Background(), stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, mov.QuantidadeNova, "zerar o estoque é permitido; negativo não")
}

func TestRegister_MagnitudeInvalida(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 10, true)
	uc, _ := newMovementUseCase(s)
	ctx := context.Background()

	casos := []stock.MovimentacaoInput{
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoEntrada, Quantidade: 0},
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoEntrada, Quantidade: -5},
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 0},
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: -1},
		{UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoAjuste, Quantidade: -1},
	}
	for _, in := range casos {
		_, err := uc.Register(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "tipo=%s quantidade=%d", in.Tipo, in.Quantidade)
	}
}

// Ajuste para o mesmo valor (delta zero) ainda entra no ledger: a correção foi
// solicitada e deve ficar auditada.
func TestRegister_AjusteSemVariacaoAindaRegistra(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 10, true)
	uc, _ := newMovementUseCase(s)

	mov, err := uc.Register(context.Background(), stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoAjuste, Quantidade: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, mov.Delta())

	movs, _ := (&memMovRepo{s}).ListByProduto(p.ID)
	assert.Len(t, movs, 1)
}

func TestRegister_AjusteParaZero(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 10, true)
	uc, _ := newMovementUseCase(s)

	mov, err := uc.Register(context.Background(), stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoAjuste, Quantidade: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, mov.QuantidadeNova)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validações de tipo, produto e vínculo
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_TipoDesconhecido(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 10, true)
	uc, _ := newMovementUseCase(s)

	_, err := uc.Register(context.Background(), stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: "transferencia", Quantidade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ProdutoInexistente(t *testing.T) {
	s := newMemStore()
	uc, _ := newMovementUseCase(s)

	_, err := uc.Register(context.Background(), stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: uuid.New().String(), Tipo: entity.MovimentacaoEntrada, Quantidade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_ProdutoDesativado(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 10, false)
	uc, _ := newMovementUseCase(s)

	_, err := uc.Register(context.Background(), stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoEntrada, Quantidade: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_ProdutoDeOutraConta(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaB, 10, true)
	uc, _ := newMovementUseCase(s)

	_, err := uc.Register(context.Background(), stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegister_AgendamentoInexistente(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 10, true)
	uc, _ := newMovementUseCase(s)

	agID := uuid.New().String()
	_, err := uc.Register(context.Background(), stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 1,
		AgendamentoID: &agID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_AgendamentoVinculado(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 10, true)
	uc, agRepo := newMovementUseCase(s)

	ag := &entity.Agendamento{ID: uuid.New().String(), UserID: contaA, Status: entity.AgendamentoConfirmado}
	agRepo.agendamentos[ag.ID] = ag

	mov, err := uc.Register(context.Background(), stock.MovimentacaoInput{
		UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 2,
		Motivo: "consumo em atendimento", AgendamentoID: &ag.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, mov.AgendamentoID)
	assert.Equal(t, ag.ID, *mov.AgendamentoID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concorrência: duas saídas disputando o mesmo estoque
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SaidasConcorrentes_SoUmaGanha(t *testing.T) {
	s := newMemStore()
	p := s.addProduto(contaA, 5, true)
	uc, _ := newMovementUseCase(s)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Register(context.Background(), stock.MovimentacaoInput{
				UserID: contaA, ProdutoID: p.ID, Tipo: entity.MovimentacaoSaida, Quantidade: 5,
			})
		}(i)
	}
	wg.Wait()

	sucessos, falhas := 0, 0
	for _, err := range errs {
		if err == nil {
			sucessos++
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
			falhas++
		}
	}
	assert.Equal(t, 1, sucessos, "exatamente uma saída deve ser aplicada")
	assert.Equal(t, 1, falhas, "a outra deve falhar por estoque insuficiente")

	atual, _ := (&memProdutoRepo{s}).GetByID(p.ID)
	assert.Equal(t, 0, atual.QuantidadeAtual)
	movs, _ := (&memMovRepo{s}).ListByProduto(p.ID)
	assert.Len(t, movs, 1, "o ledger só registra a movimentação aplicada")
}
