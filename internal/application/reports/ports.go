package reports

import (
	"context"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/application/stock"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
)

// PDFGenerator é o porto de geração dos relatórios em PDF. A implementação
// vive em infrastructure/pdf.
type PDFGenerator interface {
	// GerarRelatorioEstoque monta o PDF com alertas de estoque baixo,
	// produtos vencendo e o valor total do estoque.
	GerarRelatorioEstoque(ctx context.Context, rel *stock.RelatorioEstoque) ([]byte, error)

	// GerarRelatorioFinanceiro monta o PDF do fechamento mensal com os
	// totais e o extrato de transações do período.
	GerarRelatorioFinanceiro(ctx context.Context, rel *dto.RelatorioFinanceiroDTO, transacoes []*entity.TransacaoFinanceira) ([]byte, error)
}
