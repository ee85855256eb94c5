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

	"github.com/ddik-sports/ddik-api/internal/application/auth"
	"github.com/ddik-sports/ddik-api/internal/application/incidents"
	"github.com/ddik-sports/ddik-api/internal/application/ledger"
	"github.com/ddik-sports/ddik-api/internal/application/orders"
	"github.com/ddik-sports/ddik-api/internal/application/reports"
	"github.com/ddik-sports/ddik-api/internal/application/usecase"
	infrapdf "github.com/ddik-sports/ddik-api/internal/infrastructure/pdf"
	"github.com/ddik-sports/ddik-api/internal/infrastructure/postgres"
	httpRouter "github.com/ddik-sports/ddik-api/internal/interfaces/http"
	"github.com/ddik-sports/ddik-api/pkg/config"
	"github.com/ddik-sports/ddik-api/pkg/logger"
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
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	invitationRepo := postgres.NewInvitationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	incidentRepo := postgres.NewIncidentRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	reportsRepo := postgres.NewReportsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockLedgerUC := ledger.NewStockLedgerUseCase(txRunner, productRepo)
	movementQueryUC := ledger.NewMovementQueryUseCase(movementRepo)
	orderUC := orders.NewOrderUseCase(txRunner, stockLedgerUC, orderRepo, productRepo)
	incidentUC := incidents.NewIncidentUseCase(incidentRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	dashboardUC := reports.NewDashboardUseCase(reportsRepo)

	// PDF: exportação do relatório de vendas
	pdfGenerator := infrapdf.NewMarotoSalesReportGenerator()
	pdfUC := reports.NewPDFUseCase(reportsRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(txRunner, userRepo, invitationRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.InviteConfig{
		DefaultExpirationDays: cfg.Invite.ExpirationDays,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "D-DIK Sports API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		NotificationUC: notificationUC,
		StockLedger:    stockLedgerUC,
		MovementQuery:  movementQueryUC,
		OrderUC:        orderUC,
		IncidentUC:     incidentUC,
		AuthUC:         authUC,
		DashboardUC:    dashboardUC,
		PDFUC:          pdfUC,
		JWTSecret:      cfg.JWT.Secret,
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
