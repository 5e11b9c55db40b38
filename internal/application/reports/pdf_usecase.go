// Package reports gera os relatórios em PDF da clínica (estoque e financeiro).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/clinivet/clinivet-api/internal/application/analytics"
	"github.com/clinivet/clinivet-api/internal/application/stock"
	"github.com/clinivet/clinivet-api/internal/domain"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

// PDFUseCase orquestra a montagem dos dados e a geração dos PDFs.
type PDFUseCase struct {
	stockReport   *stock.StockReportUseCase
	dashboard     *analytics.DashboardUseCase
	transacaoRepo repository.TransacaoRepository
	generator     PDFGenerator
}

// NewPDFUseCase constrói o caso de uso injetando as dependências.
func NewPDFUseCase(
	stockReport *stock.StockReportUseCase,
	dashboard *analytics.DashboardUseCase,
	transacaoRepo repository.TransacaoRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		stockReport:   stockReport,
		dashboard:     dashboard,
		transacaoRepo: transacaoRepo,
		generator:     generator,
	}
}

// RelatorioEstoquePDF gera o PDF do relatório de estoque da conta.
// Devolve os bytes do documento e o nome de arquivo sugerido.
func (uc *PDFUseCase) RelatorioEstoquePDF(ctx context.Context, userID string) ([]byte, string, error) {
	rel, err := uc.stockReport.Relatorio(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("relatorio estoque: %w", err)
	}
	pdfBytes, err := uc.generator.GerarRelatorioEstoque(ctx, rel)
	if err != nil {
		return nil, "", fmt.Errorf("relatorio estoque: gerar pdf: %w", err)
	}
	filename := fmt.Sprintf("relatorio_estoque_%s.pdf", rel.GeradoEm.Format("2006-01-02"))
	return pdfBytes, filename, nil
}

// RelatorioFinanceiroPDF gera o PDF do fechamento financeiro de um mês.
func (uc *PDFUseCase) RelatorioFinanceiroPDF(ctx context.Context, userID string, ano int, mes time.Month) ([]byte, string, error) {
	if ano < 2000 || mes < time.January || mes > time.December {
		return nil, "", domain.ErrInvalidInput
	}
	rel, err := uc.dashboard.RelatorioFinanceiro(ctx, userID, ano, mes)
	if err != nil {
		return nil, "", err
	}

	inicio := time.Date(ano, mes, 1, 0, 0, 0, 0, time.Local)
	fim := inicio.AddDate(0, 1, 0).Add(-time.Nanosecond)
	transacoes, err := uc.transacaoRepo.ListByUser(userID, repository.TransacaoFilter{From: &inicio, To: &fim})
	if err != nil {
		return nil, "", fmt.Errorf("relatorio financeiro: listar transacoes: %w", err)
	}

	pdfBytes, err := uc.generator.GerarRelatorioFinanceiro(ctx, rel, transacoes)
	if err != nil {
		return nil, "", fmt.Errorf("relatorio financeiro: gerar pdf: %w", err)
	}
	filename := fmt.Sprintf("relatorio_financeiro_%04d-%02d.pdf", ano, int(mes))
	return pdfBytes, filename, nil
}
