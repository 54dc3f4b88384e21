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

	"github.com/tu-usuario/customer-portal/internal/application/orders"
	"github.com/tu-usuario/customer-portal/internal/application/portal"
	"github.com/tu-usuario/customer-portal/internal/application/profile"
	"github.com/tu-usuario/customer-portal/internal/application/session"
	"github.com/tu-usuario/customer-portal/internal/application/subscriptions"
	"github.com/tu-usuario/customer-portal/internal/application/support"
	infraanalytics "github.com/tu-usuario/customer-portal/internal/infrastructure/analytics"
	"github.com/tu-usuario/customer-portal/internal/infrastructure/gateway"
	infrapdf "github.com/tu-usuario/customer-portal/internal/infrastructure/pdf"
	"github.com/tu-usuario/customer-portal/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/customer-portal/internal/interfaces/http"
	"github.com/tu-usuario/customer-portal/pkg/config"
	"github.com/tu-usuario/customer-portal/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	sessionRepo := postgres.NewSessionRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	preferencesRepo := postgres.NewPreferencesRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)

	sink := infraanalytics.NewLogSink(log)
	cartGateway := gateway.NewCartStub(log, cfg.Gateway.Latency)
	trackingGateway := gateway.NewCanadaPostTracking()
	providerGateway := gateway.NewSubscriptionProviderStub(log, cfg.Gateway.Latency)

	sessionUC := session.NewUseCase(sessionRepo, customerRepo, sink, session.Config{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
		Issuer: cfg.Session.Issuer,
	})
	ordersUC := orders.NewUseCase(orderRepo, cartGateway, trackingGateway, sink, cfg.Gateway.Timeout)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	ordersPDF := orders.NewPDFUseCase(orderRepo, customerRepo, pdfGenerator)
	subscriptionUC := subscriptions.NewUseCase(subscriptionRepo, providerGateway, sink, cfg.Gateway.Timeout)
	supportUC := support.NewUseCase(ticketRepo, customerRepo, sink)
	profileUC := profile.NewUseCase(customerRepo, preferencesRepo, sink)
	portalUC := portal.NewUseCase(profileUC, ordersUC, subscriptionUC)

	// Purga inicial de sesiones vencidas; la expiración también se aplica
	// perezosamente en cada verificación.
	if purged, err := sessionRepo.DeleteExpired(); err != nil {
		log.Warn().Err(err).Msg("purga de sesiones vencidas")
	} else if purged > 0 {
		log.Info().Int("purged", purged).Msg("sesiones vencidas purgadas")
	}

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
		Title:    "Customer Portal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:      sessionUC,
		PortalUC:       portalUC,
		OrdersUC:       ordersUC,
		OrdersPDF:      ordersPDF,
		SubscriptionUC: subscriptionUC,
		SupportUC:      supportUC,
		ProfileUC:      profileUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
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
