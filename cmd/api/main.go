package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/clinivet/clinivet-api/internal/application/analytics"
	"github.com/clinivet/clinivet-api/internal/application/auth"
	"github.com/clinivet/clinivet-api/internal/application/reports"
	"github.com/clinivet/clinivet-api/internal/application/stock"
	"github.com/clinivet/clinivet-api/internal/application/usecase"
	infrapdf "github.com/clinivet/clinivet-api/internal/infrastructure/pdf"
	"github.com/clinivet/clinivet-api/internal/infrastructure/postgres"
	httpRouter "github.com/clinivet/clinivet-api/internal/interfaces/http"
	"github.com/clinivet/clinivet-api/pkg/config"
	"github.com/clinivet/clinivet-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	pacienteRepo := postgres.NewPacienteRepository(pool)
	agendamentoRepo := postgres.NewAgendamentoRepository(pool)
	prontuarioRepo := postgres.NewProntuarioRepository(pool)
	transacaoRepo := postgres.NewTransacaoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	registerMovementUC := stock.NewRegisterMovementUseCase(txRunner, produtoRepo, agendamentoRepo)
	stockReportUC := stock.NewStockReportUseCase(produtoRepo, movRepo, analyticsRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	pacienteUC := usecase.NewPacienteUseCase(pacienteRepo, clienteRepo)
	agendamentoUC := usecase.NewAgendamentoUseCase(agendamentoRepo, pacienteRepo)
	prontuarioUC := usecase.NewProntuarioUseCase(prontuarioRepo, pacienteRepo)
	transacaoUC := usecase.NewTransacaoUseCase(transacaoRepo, categoriaRepo, pacienteRepo, agendamentoRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, produtoRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportPDFUC := reports.NewPDFUseCase(stockReportUC, dashboardUC, transacaoRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CliniVet API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProdutoUC:        produtoUC,
		RegisterMovement: registerMovementUC,
		StockReport:      stockReportUC,
		ClienteUC:        clienteUC,
		PacienteUC:       pacienteUC,
		AgendamentoUC:    agendamentoUC,
		ProntuarioUC:     prontuarioUC,
		TransacaoUC:      transacaoUC,
		DashboardUC:      dashboardUC,
		ReportPDF:        reportPDFUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, fechando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
