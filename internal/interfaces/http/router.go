package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinivet/clinivet-api/internal/application/analytics"
	"github.com/clinivet/clinivet-api/internal/application/auth"
	"github.com/clinivet/clinivet-api/internal/application/reports"
	"github.com/clinivet/clinivet-api/internal/application/stock"
	"github.com/clinivet/clinivet-api/internal/application/usecase"
	"github.com/clinivet/clinivet-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProdutoUC        *usecase.ProdutoUseCase
	RegisterMovement *stock.RegisterMovementUseCase
	StockReport      *stock.StockReportUseCase
	ClienteUC        *usecase.ClienteUseCase
	PacienteUC       *usecase.PacienteUseCase
	AgendamentoUC    *usecase.AgendamentoUseCase
	ProntuarioUC     *usecase.ProntuarioUseCase
	TransacaoUC      *usecase.TransacaoUseCase
	DashboardUC      *analytics.DashboardUseCase
	ReportPDF        *reports.PDFUseCase
	JWTSecret        string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	clinico := RequireRole(entity.RoleAdmin, entity.RoleVeterinario)

	// Produtos de estoque
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Deactivate)

	// Movimentações e alertas de estoque
	estoque := protected.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.RegisterMovement, deps.StockReport)
	estoque.Post("/movimentacoes", estoqueHandler.RegistrarMovimentacao)
	estoque.Get("/movimentacoes", estoqueHandler.MovimentacoesRecentes)
	estoque.Get("/alertas/baixo", estoqueHandler.EstoqueBaixo)
	estoque.Get("/alertas/vencendo", estoqueHandler.Vencendo)
	estoque.Get("/relatorio", estoqueHandler.Relatorio)
	produtos.Get("/:id/movimentacoes", estoqueHandler.HistoricoProduto)
	produtos.Get("/:id/movimentacoes/resumo", estoqueHandler.ResumoProduto)

	// Clientes (tutores)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.PacienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)
	clientes.Get("/:id/pacientes", clienteHandler.ListPacientes)

	// Pacientes (animais)
	pacientes := protected.Group("/pacientes")
	pacienteHandler := NewPacienteHandler(deps.PacienteUC)
	pacientes.Post("/", pacienteHandler.Create)
	pacientes.Get("/", pacienteHandler.List)
	pacientes.Get("/:id", pacienteHandler.GetByID)
	pacientes.Put("/:id", pacienteHandler.Update)
	pacientes.Delete("/:id", pacienteHandler.Delete)

	// Agendamentos
	agendamentos := protected.Group("/agendamentos")
	agendamentoHandler := NewAgendamentoHandler(deps.AgendamentoUC)
	agendamentos.Post("/", agendamentoHandler.Create)
	agendamentos.Get("/", agendamentoHandler.List)
	agendamentos.Get("/:id", agendamentoHandler.GetByID)
	agendamentos.Put("/:id", agendamentoHandler.Update)
	agendamentos.Delete("/:id", agendamentoHandler.Delete)

	// Prontuários (escrita restrita a admin e veterinario)
	prontuarios := protected.Group("/prontuarios")
	prontuarioHandler := NewProntuarioHandler(deps.ProntuarioUC)
	prontuarios.Post("/", clinico, prontuarioHandler.Create)
	prontuarios.Get("/", prontuarioHandler.List)
	prontuarios.Get("/:id", prontuarioHandler.GetByID)
	prontuarios.Put("/:id", clinico, prontuarioHandler.Update)
	prontuarios.Delete("/:id", clinico, prontuarioHandler.Delete)
	pacientes.Get("/:id/prontuarios", prontuarioHandler.ListByPaciente)

	// Financeiro
	transacoes := protected.Group("/transacoes")
	transacaoHandler := NewTransacaoHandler(deps.TransacaoUC)
	transacoes.Post("/", transacaoHandler.Create)
	transacoes.Get("/", transacaoHandler.List)
	transacoes.Get("/:id", transacaoHandler.GetByID)
	transacoes.Put("/:id", transacaoHandler.Update)
	transacoes.Delete("/:id", transacaoHandler.Delete)
	categorias := protected.Group("/categorias")
	categorias.Post("/", transacaoHandler.CreateCategoria)
	categorias.Get("/", transacaoHandler.ListCategorias)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Relatórios em PDF
	relatorios := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.ReportPDF)
	relatorios.Get("/estoque.pdf", relatorioHandler.EstoquePDF)
	relatorios.Get("/financeiro.pdf", relatorioHandler.FinanceiroPDF)
}
