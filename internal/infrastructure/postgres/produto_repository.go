package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoColumns = `id, user_id, nome, categoria, descricao, unidade_medida,
	quantidade_atual, quantidade_minima, preco_custo, preco_venda, fornecedor,
	data_validade, lote, codigo_barras, ativo, created_at, updated_at`

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência de produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(
		&p.ID, &p.UserID, &p.Nome, &p.Categoria, &p.Descricao, &p.UnidadeMedida,
		&p.QuantidadeAtual, &p.QuantidadeMinima, &p.PrecoCusto, &p.PrecoVenda, &p.Fornecedor,
		&p.DataValidade, &p.Lote, &p.CodigoBarras, &p.Ativo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos_estoque (id, user_id, nome, categoria, descricao, unidade_medida,
			quantidade_atual, quantidade_minima, preco_custo, preco_venda, fornecedor,
			data_validade, lote, codigo_barras, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.UserID, produto.Nome, produto.Categoria, produto.Descricao,
		produto.UnidadeMedida, produto.QuantidadeAtual, produto.QuantidadeMinima,
		produto.PrecoCusto, produto.PrecoVenda, produto.Fornecedor, produto.DataValidade,
		produto.Lote, produto.CodigoBarras, produto.Ativo, produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos_estoque WHERE id = $1`
	p, err := scanProduto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// GetForUpdate obtém o produto e bloqueia a linha (SELECT FOR UPDATE).
// Movimentações concorrentes do mesmo produto serializam neste lock.
func (r *ProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos_estoque WHERE id = $1 FOR UPDATE`
	p, err := scanProduto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto for update: %w", err)
	}
	return p, nil
}

// Update atualiza os dados cadastrais do produto. Não toca em quantidade_atual:
// essa coluna só muda via UpdateQuantidade, dentro da transação de movimentação.
func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	query := `
		UPDATE produtos_estoque SET nome = $2, categoria = $3, descricao = $4,
			unidade_medida = $5, quantidade_minima = $6, preco_custo = $7, preco_venda = $8,
			fornecedor = $9, data_validade = $10, lote = $11, codigo_barras = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Categoria, produto.Descricao, produto.UnidadeMedida,
		produto.QuantidadeMinima, produto.PrecoCusto, produto.PrecoVenda, produto.Fornecedor,
		produto.DataValidade, produto.Lote, produto.CodigoBarras, produto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateQuantidade grava a nova quantidade calculada pela movimentação.
func (r *ProdutoRepo) UpdateQuantidade(produtoID string, quantidade int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos_estoque SET quantidade_atual = $2, updated_at = now() WHERE id = $1`,
		produtoID, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// Deactivate faz a exclusão lógica do produto (ativo = false).
func (r *ProdutoRepo) Deactivate(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE produtos_estoque SET ativo = false, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deactivate produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser lista produtos ativos da conta, com filtros opcionais.
func (r *ProdutoRepo) ListByUser(userID string, f repository.ProdutoFilter) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + `
		FROM produtos_estoque
		WHERE user_id = $1 AND ativo = true
		  AND ($2 = '' OR categoria = $2)
		  AND ($3 = '' OR nome ILIKE '%' || $3 || '%')
		ORDER BY nome ASC`
	rows, err := r.q.Query(context.Background(), query, userID, f.Categoria, f.Nome)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	return collectProdutos(rows)
}

// ListEstoqueBaixo lista produtos ativos com quantidade_atual <= quantidade_minima.
// O limite conta como baixo (comparação inclusiva).
func (r *ProdutoRepo) ListEstoqueBaixo(userID string) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + `
		FROM produtos_estoque
		WHERE user_id = $1 AND ativo = true AND quantidade_atual <= quantidade_minima
		ORDER BY quantidade_atual ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list estoque baixo: %w", err)
	}
	defer rows.Close()
	return collectProdutos(rows)
}

// ListVencendo lista produtos ativos com data_validade até until. Produtos sem
// validade (NULL) ficam de fora.
func (r *ProdutoRepo) ListVencendo(userID string, until time.Time) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + `
		FROM produtos_estoque
		WHERE user_id = $1 AND ativo = true AND data_validade IS NOT NULL AND data_validade <= $2
		ORDER BY data_validade ASC`
	rows, err := r.q.Query(context.Background(), query, userID, until)
	if err != nil {
		return nil, fmt.Errorf("list vencendo: %w", err)
	}
	defer rows.Close()
	return collectProdutos(rows)
}

func collectProdutos(rows pgx.Rows) ([]*entity.Produto, error) {
	produtos := make([]*entity.Produto, 0)
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		produtos = append(produtos, p)
	}
	return produtos, rows.Err()
}
