// Package analytics contém os casos de uso de leitura para o dashboard da
// clínica e o relatório financeiro mensal.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinivet/clinivet-api/internal/application/dto"
	"github.com/clinivet/clinivet-api/internal/domain/repository"
)

const janelaVencimentoDias = 30 // janela do widget de produtos vencendo

// DashboardUseCase gera o resumo do dia e do mês em curso.
//
// Fonte de dados: AnalyticsRepository (consultas read-only) mais os alertas do
// ProdutoRepository. Não acessa tabelas diretamente.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	produtoRepo   repository.ProdutoRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, produtoRepo repository.ProdutoRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, produtoRepo: produtoRepo}
}

// GetSummary constrói o DashboardSummaryDTO da conta indicada.
//
// As consultas independentes rodam em paralelo:
//  1. contadores (clientes, pacientes, agendamentos de hoje)
//  2. financeiro do mês em curso
//  3. financeiro do mês anterior (para a variação percentual)
//  4. alertas de estoque (baixo + vencendo)
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hoje: 00:00:00.000 – 23:59:59.999
	hojeInicio := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	hojeFim := hojeInicio.Add(24*time.Hour - time.Nanosecond)

	// Mês em curso: dia 1 às 00:00 – hoje às 23:59:59
	mesInicio := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	mesFim := hojeFim

	// Mês anterior completo
	anteriorInicio := mesInicio.AddDate(0, -1, 0)
	anteriorFim := mesInicio.Add(-time.Nanosecond)

	type contadoresResult struct {
		clientes, pacientes, agendamentos int
		err                               error
	}
	type financeiroResult struct {
		totais *repository.TotaisFinanceiros
		err    error
	}
	type estoqueResult struct {
		baixo, vencendo int
		err             error
	}

	contCh := make(chan contadoresResult, 1)
	mesCh := make(chan financeiroResult, 1)
	anteriorCh := make(chan financeiroResult, 1)
	estoqueCh := make(chan estoqueResult, 1)

	go func() {
		clientes, err := uc.analyticsRepo.CountClientes(ctx, userID)
		if err != nil {
			contCh <- contadoresResult{err: err}
			return
		}
		pacientes, err := uc.analyticsRepo.CountPacientes(ctx, userID)
		if err != nil {
			contCh <- contadoresResult{err: err}
			return
		}
		agendamentos, err := uc.analyticsRepo.CountAgendamentos(ctx, userID, hojeInicio, hojeFim)
		contCh <- contadoresResult{clientes, pacientes, agendamentos, err}
	}()
	go func() {
		totais, err := uc.analyticsRepo.GetTotaisFinanceiros(ctx, userID, mesInicio, mesFim)
		mesCh <- financeiroResult{totais, err}
	}()
	go func() {
		totais, err := uc.analyticsRepo.GetTotaisFinanceiros(ctx, userID, anteriorInicio, anteriorFim)
		anteriorCh <- financeiroResult{totais, err}
	}()
	go func() {
		baixo, err := uc.produtoRepo.ListEstoqueBaixo(userID)
		if err != nil {
			estoqueCh <- estoqueResult{err: err}
			return
		}
		vencendo, err := uc.produtoRepo.ListVencendo(userID, now.AddDate(0, 0, janelaVencimentoDias))
		estoqueCh <- estoqueResult{len(baixo), len(vencendo), err}
	}()

	contadores := <-contCh
	mes := <-mesCh
	anterior := <-anteriorCh
	estoque := <-estoqueCh

	if contadores.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", contadores.err)
	}
	if mes.err != nil {
		return nil, fmt.Errorf("dashboard: financeiro do mês: %w", mes.err)
	}
	if anterior.err != nil {
		return nil, fmt.Errorf("dashboard: financeiro do mês anterior: %w", anterior.err)
	}
	if estoque.err != nil {
		return nil, fmt.Errorf("dashboard: alertas de estoque: %w", estoque.err)
	}

	saldo := mes.totais.Receitas.Sub(mes.totais.Despesas).Round(2)

	return &dto.DashboardSummaryDTO{
		TotalClientes:        contadores.clientes,
		TotalPacientes:       contadores.pacientes,
		AgendamentosHoje:     contadores.agendamentos,
		ReceitasMes:          mes.totais.Receitas.Round(2),
		DespesasMes:          mes.totais.Despesas.Round(2),
		SaldoMes:             saldo,
		VariacaoReceitas:     VariacaoPercentual(mes.totais.Receitas, anterior.totais.Receitas),
		VariacaoDespesas:     VariacaoPercentual(mes.totais.Despesas, anterior.totais.Despesas),
		ProdutosEstoqueBaixo: estoque.baixo,
		ProdutosVencendo:     estoque.vencendo,
		MesLabel:             mesLabel(now),
	}, nil
}

// RelatorioFinanceiro soma receitas e despesas de um mês fechado (ano/mês).
func (uc *DashboardUseCase) RelatorioFinanceiro(ctx context.Context, userID string, ano int, mes time.Month) (*dto.RelatorioFinanceiroDTO, error) {
	inicio := time.Date(ano, mes, 1, 0, 0, 0, 0, time.Local)
	fim := inicio.AddDate(0, 1, 0).Add(-time.Nanosecond)

	totais, err := uc.analyticsRepo.GetTotaisFinanceiros(ctx, userID, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("relatório financeiro: %w", err)
	}
	return &dto.RelatorioFinanceiroDTO{
		Periodo:  mesLabel(inicio),
		Receitas: totais.Receitas.Round(2),
		Despesas: totais.Despesas.Round(2),
		Saldo:    totais.Receitas.Sub(totais.Despesas).Round(2),
	}, nil
}

// VariacaoPercentual calcula a variação de atual sobre anterior em %.
// Com anterior zero: 100% se houve valor no mês atual, 0% se não houve
// (comportamento da tela financeira original).
func VariacaoPercentual(atual, anterior decimal.Decimal) decimal.Decimal {
	if anterior.IsZero() {
		if atual.GreaterThan(decimal.Zero) {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}
	cem := decimal.NewFromInt(100)
	return atual.Sub(anterior).Div(anterior).Mul(cem).Round(1)
}

// mesLabel devolve uma etiqueta legível do mês, ex: "Agosto 2026".
func mesLabel(t time.Time) string {
	meses := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", meses[t.Month()-1], t.Year())
}
