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
	"github.com/jcastellanos/terralote-api/internal/application/auth"
	"github.com/jcastellanos/terralote-api/internal/application/document"
	"github.com/jcastellanos/terralote-api/internal/application/payment"
	"github.com/jcastellanos/terralote-api/internal/application/usecase"
	"github.com/jcastellanos/terralote-api/internal/infrastructure/gateway"
	"github.com/jcastellanos/terralote-api/internal/infrastructure/memory"
	infrapdf "github.com/jcastellanos/terralote-api/internal/infrastructure/pdf"
	httpRouter "github.com/jcastellanos/terralote-api/internal/interfaces/http"
	"github.com/jcastellanos/terralote-api/pkg/config"
	"github.com/jcastellanos/terralote-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store := memory.NewStore()
	if cfg.Seed.DemoData {
		seedLog := log.Component("seed")
		if err := memory.SeedDemoData(store, cfg.Auth.PasswordSuffix); err != nil {
			seedLog.Fatal().Err(err).Msg("carga de datos demo")
		}
		seedLog.Info().Msg("datos demo cargados")
	}

	userRepo := memory.NewUserRepository(store)
	projectRepo := memory.NewProjectRepository(store)
	lotRepo := memory.NewLotRepository(store)
	paymentRepo := memory.NewPaymentRepository(store)
	commissionRepo := memory.NewCommissionRepository(store)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.LoginDelayMS)
	userUC := usecase.NewUserUseCase(userRepo, cfg.Auth.PasswordSuffix)
	projectUC := usecase.NewProjectUseCase(projectRepo, lotRepo)
	lotUC := usecase.NewLotUseCase(lotRepo, projectRepo, userRepo, commissionRepo)
	paymentGateway := gateway.NewMockGateway(cfg.Gateway.DelayMS)
	paymentUC := payment.NewUseCase(paymentRepo, lotRepo, userRepo, paymentGateway)
	commissionUC := usecase.NewCommissionUseCase(commissionRepo, userRepo)
	statementUC := usecase.NewStatementUseCase(lotRepo, projectRepo, userRepo, paymentRepo)
	reportUC := usecase.NewReportUseCase(projectRepo, lotRepo, paymentRepo, commissionRepo)

	pdfGenerator := infrapdf.NewMarotoGenerator(cfg.App.Name)
	documentUC := document.NewUseCase(statementUC, paymentUC, reportUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Terralote API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		ProjectUC:    projectUC,
		LotUC:        lotUC,
		PaymentUC:    paymentUC,
		CommissionUC: commissionUC,
		StatementUC:  statementUC,
		ReportUC:     reportUC,
		DocumentUC:   documentUC,
		UserRepo:     userRepo,
		JWTSecret:    cfg.JWT.Secret,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
