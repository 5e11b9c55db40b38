package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

const movimentacaoColumns = `id, user_id, produto_id, tipo, quantidade,
	quantidade_anterior, quantidade_nova, motivo, observacoes, agendamento_id, created_at`

// MovimentacaoRepo implementação do ledger de movimentações sobre PostgreSQL.
// Somente INSERT e SELECT: o ledger é append-only.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

func scanMovimentacao(row pgx.Row) (*entity.MovimentacaoEstoque, error) {
	var m entity.MovimentacaoEstoque
	err := row.Scan(
		&m.ID, &m.UserID, &m.ProdutoID, &m.Tipo, &m.Quantidade,
		&m.QuantidadeAnterior, &m.QuantidadeNova, &m.Motivo, &m.Observacoes,
		&m.AgendamentoID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create grava uma movimentação no ledger.
func (r *MovimentacaoRepo) Create(mov *entity.MovimentacaoEstoque) error {
	query := `
		INSERT INTO movimentacoes_estoque (id, user_id, produto_id, tipo, quantidade,
			quantidade_anterior, quantidade_nova, motivo, observacoes, agendamento_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.UserID, mov.ProdutoID, mov.Tipo, mov.Quantidade,
		mov.QuantidadeAnterior, mov.QuantidadeNova, mov.Motivo, mov.Observacoes,
		mov.AgendamentoID, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID.
func (r *MovimentacaoRepo) GetByID(id string) (*entity.MovimentacaoEstoque, error) {
	query := `SELECT ` + movimentacaoColumns + ` FROM movimentacoes_estoque WHERE id = $1`
	m, err := scanMovimentacao(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao: %w", err)
	}
	return m, nil
}

// ListByProduto devolve o histórico completo do produto em ordem de criação.
// A ordem ascendente permite reconstruir a quantidade atual reaplicando os deltas.
func (r *MovimentacaoRepo) ListByProduto(produtoID string) ([]*entity.MovimentacaoEstoque, error) {
	query := `SELECT ` + movimentacaoColumns + `
		FROM movimentacoes_estoque WHERE produto_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, produtoID)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	return collectMovimentacoes(rows)
}

// ListRecentes devolve movimentações da conta a partir de since, mais recentes primeiro.
func (r *MovimentacaoRepo) ListRecentes(userID string, since time.Time, limit, offset int) ([]*entity.MovimentacaoEstoque, error) {
	query := `SELECT ` + movimentacaoColumns + `
		FROM movimentacoes_estoque
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, userID, since, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes recentes: %w", err)
	}
	defer rows.Close()
	return collectMovimentacoes(rows)
}

// Resumo soma entradas e saídas do produto a partir de since. Ajustes não
// entram na soma: são correções de inventário, não fluxo.
func (r *MovimentacaoRepo) Resumo(produtoID string, since time.Time) (*repository.ResumoMovimentacao, error) {
	query := `
		SELECT
			COALESCE(SUM(quantidade) FILTER (WHERE tipo = 'entrada'), 0),
			COALESCE(SUM(quantidade) FILTER (WHERE tipo = 'saida'), 0)
		FROM movimentacoes_estoque
		WHERE produto_id = $1 AND created_at >= $2`
	var resumo repository.ResumoMovimentacao
	err := r.q.QueryRow(context.Background(), query, produtoID, since).Scan(
		&resumo.TotalEntradas, &resumo.TotalSaidas,
	)
	if err != nil {
		return nil, fmt.Errorf("resumo movimentacoes: %w", err)
	}
	return &resumo, nil
}

func collectMovimentacoes(rows pgx.Rows) ([]*entity.MovimentacaoEstoque, error) {
	movs := make([]*entity.MovimentacaoEstoque, 0)
	for rows.Next() {
		m, err := scanMovimentacao(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		movs = append(movs, m)
	}
	return movs, rows.Err()
}
