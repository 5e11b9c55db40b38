package stock

import (
	"context"

	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante a atomicidade do ledger de estoque:
// o insert da movimentação e o update da quantidade do produto são confirmados
// juntos ou desfeitos juntos.
//
// Falhas de serialização concorrente devem ser devolvidas como domain.ErrConflict,
// nunca engolidas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
