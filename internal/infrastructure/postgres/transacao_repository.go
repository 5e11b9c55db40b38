package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

var (
	_ repository.TransacaoRepository = (*TransacaoRepo)(nil)
	_ repository.CategoriaRepository = (*CategoriaRepo)(nil)
)

const transacaoColumns = `id, user_id, tipo, categoria, descricao, valor, data_transacao,
	forma_pagamento, status, paciente_id, agendamento_id, observacoes, created_at, updated_at`

// TransacaoRepo implementação do porto TransacaoRepository sobre PostgreSQL.
type TransacaoRepo struct {
	q Querier
}

// NewTransacaoRepository constrói o adaptador de transações financeiras.
func NewTransacaoRepository(q Querier) *TransacaoRepo {
	return &TransacaoRepo{q: q}
}

func scanTransacao(row pgx.Row) (*entity.TransacaoFinanceira, error) {
	var t entity.TransacaoFinanceira
	err := row.Scan(
		&t.ID, &t.UserID, &t.Tipo, &t.Categoria, &t.Descricao, &t.Valor, &t.DataTransacao,
		&t.FormaPagamento, &t.Status, &t.PacienteID, &t.AgendamentoID, &t.Observacoes,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste uma nova transação.
func (r *TransacaoRepo) Create(t *entity.TransacaoFinanceira) error {
	query := `
		INSERT INTO transacoes_financeiras (id, user_id, tipo, categoria, descricao, valor,
			data_transacao, forma_pagamento, status, paciente_id, agendamento_id, observacoes,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.UserID, t.Tipo, t.Categoria, t.Descricao, t.Valor, t.DataTransacao,
		t.FormaPagamento, t.Status, t.PacienteID, t.AgendamentoID, t.Observacoes,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transacao: %w", err)
	}
	return nil
}

// GetByID obtém uma transação por ID.
func (r *TransacaoRepo) GetByID(id string) (*entity.TransacaoFinanceira, error) {
	query := `SELECT ` + transacaoColumns + ` FROM transacoes_financeiras WHERE id = $1`
	t, err := scanTransacao(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transacao: %w", err)
	}
	return t, nil
}

// Update atualiza uma transação.
func (r *TransacaoRepo) Update(t *entity.TransacaoFinanceira) error {
	query := `
		UPDATE transacoes_financeiras SET tipo = $2, categoria = $3, descricao = $4, valor = $5,
			data_transacao = $6, forma_pagamento = $7, status = $8, paciente_id = $9,
			agendamento_id = $10, observacoes = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Tipo, t.Categoria, t.Descricao, t.Valor, t.DataTransacao,
		t.FormaPagamento, t.Status, t.PacienteID, t.AgendamentoID, t.Observacoes, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transacao: %w", err)
	}
	return nil
}

// Delete remove uma transação.
func (r *TransacaoRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM transacoes_financeiras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transacao: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser lista transações da conta com filtros opcionais, mais recentes primeiro.
func (r *TransacaoRepo) ListByUser(userID string, f repository.TransacaoFilter) ([]*entity.TransacaoFinanceira, error) {
	query := `SELECT ` + transacaoColumns + `
		FROM transacoes_financeiras
		WHERE user_id = $1
		  AND ($2 = '' OR tipo = $2)
		  AND ($3 = '' OR categoria = $3)
		  AND ($4 = '' OR status = $4)
		  AND ($5::timestamptz IS NULL OR data_transacao >= $5)
		  AND ($6::timestamptz IS NULL OR data_transacao <= $6)
		ORDER BY data_transacao DESC`
	rows, err := r.q.Query(context.Background(), query, userID, f.Tipo, f.Categoria, f.Status, f.From, f.To)
	if err != nil {
		return nil, fmt.Errorf("list transacoes: %w", err)
	}
	defer rows.Close()

	transacoes := make([]*entity.TransacaoFinanceira, 0)
	for rows.Next() {
		t, err := scanTransacao(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transacao: %w", err)
		}
		transacoes = append(transacoes, t)
	}
	return transacoes, rows.Err()
}

// CategoriaRepo implementação do porto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository constrói o adaptador de categorias financeiras.
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste uma nova categoria.
func (r *CategoriaRepo) Create(c *entity.CategoriaFinanceira) error {
	query := `
		INSERT INTO categorias_financeiras (id, user_id, nome, tipo, cor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.UserID, c.Nome, c.Tipo, c.Cor, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// Delete remove uma categoria.
func (r *CategoriaRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM categorias_financeiras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser lista as categorias da conta.
func (r *CategoriaRepo) ListByUser(userID string) ([]*entity.CategoriaFinanceira, error) {
	query := `
		SELECT id, user_id, nome, tipo, cor, created_at
		FROM categorias_financeiras WHERE user_id = $1 ORDER BY nome ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	categorias := make([]*entity.CategoriaFinanceira, 0)
	for rows.Next() {
		var c entity.CategoriaFinanceira
		if err := rows.Scan(&c.ID, &c.UserID, &c.Nome, &c.Tipo, &c.Cor, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		categorias = append(categorias, &c)
	}
	return categorias, rows.Err()
}
