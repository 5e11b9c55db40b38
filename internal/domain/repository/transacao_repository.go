package repository

import (
	"time"

	"github.com/clinivet/clinivet-api/internal/domain/entity"
)

// TransacaoFilter filtros do listado de transações.
type TransacaoFilter struct {
	Tipo      string // receita | despesa; vazio = ambos
	Categoria string
	Status    string
	From      *time.Time
	To        *time.Time
}

// TransacaoRepository define o porto de persistência para transações financeiras.
type TransacaoRepository interface {
	Create(t *entity.TransacaoFinanceira) error
	GetByID(id string) (*entity.TransacaoFinanceira, error)
	Update(t *entity.TransacaoFinanceira) error
	Delete(id string) error
	ListByUser(userID string, f TransacaoFilter) ([]*entity.TransacaoFinanceira, error)
}

// CategoriaRepository define o porto para categorias financeiras.
type CategoriaRepository interface {
	Create(c *entity.CategoriaFinanceira) error
	Delete(id string) error
	ListByUser(userID string) ([]*entity.CategoriaFinanceira, error)
}
