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

	appanalytics "github.com/vetpharm/vetpharm-pro/internal/application/analytics"
	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/application/auth"
	"github.com/vetpharm/vetpharm-pro/internal/application/navigation"
	"github.com/vetpharm/vetpharm-pro/internal/application/reports"
	"github.com/vetpharm/vetpharm-pro/internal/application/session"
	"github.com/vetpharm/vetpharm-pro/internal/application/usecase"
	"github.com/vetpharm/vetpharm-pro/internal/infrastructure/memory"
	infrapdf "github.com/vetpharm/vetpharm-pro/internal/infrastructure/pdf"
	httpRouter "github.com/vetpharm/vetpharm-pro/internal/interfaces/http"
	"github.com/vetpharm/vetpharm-pro/pkg/config"
	"github.com/vetpharm/vetpharm-pro/pkg/logger"
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

	// Repositorios en memoria con los datos de demostración.
	seed := memory.DefaultSeed(time.Now())
	userRepo := memory.NewUserRepository(seed.Users...)
	demoRepo := memory.NewDemoAccountRepository(seed.DemoAccounts)
	grnRepo := memory.NewGRNRepository(seed.GRNs...)
	deliveryRepo := memory.NewDeliveryRepository(seed.Deliveries...)
	inventoryRepo := memory.NewInventoryRepository(seed.Inventory...)
	consultationRepo := memory.NewConsultationRepository(seed.Consultations...)
	auditRepo := memory.NewAuditRepository(seed.AuditLogs...)
	settingsRepo := memory.NewSettingsRepository(seed.Settings)

	// Estado de sesión y navegación: una identidad activa por proceso.
	store := session.NewStore()
	navigationSvc := navigation.NewService(store)

	authUC := auth.NewAuthUseCase(demoRepo, store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, time.Duration(cfg.Auth.LoginDelayMS)*time.Millisecond)

	auditUC := audit.NewAuditUseCase(auditRepo)
	grnUC := usecase.NewGRNUseCase(grnRepo)
	deliveryUC := usecase.NewDeliveryUseCase(deliveryRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	consultationUC := usecase.NewConsultationUseCase(consultationRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(
		inventoryRepo, grnRepo, deliveryRepo, consultationRepo, auditRepo,
	)

	// PDF: representación gráfica de notas de entrada y de entrega
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportsUC := reports.NewReportsUseCase(
		grnRepo, deliveryRepo, inventoryRepo, consultationRepo, pdfGenerator,
	)

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
		Title:    "VetPharm Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		NavigationSvc:  navigationSvc,
		DashboardUC:    dashboardUC,
		GRNUC:          grnUC,
		DeliveryUC:     deliveryUC,
		InventoryUC:    inventoryUC,
		ConsultationUC: consultationUC,
		UserUC:         userUC,
		SettingsUC:     settingsUC,
		AuditUC:        auditUC,
		ReportsUC:      reportsUC,
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

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
