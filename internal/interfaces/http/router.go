package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vetpharm/vetpharm-pro/internal/application/analytics"
	"github.com/vetpharm/vetpharm-pro/internal/application/audit"
	"github.com/vetpharm/vetpharm-pro/internal/application/auth"
	"github.com/vetpharm/vetpharm-pro/internal/application/navigation"
	"github.com/vetpharm/vetpharm-pro/internal/application/reports"
	"github.com/vetpharm/vetpharm-pro/internal/application/usecase"
	"github.com/vetpharm/vetpharm-pro/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	NavigationSvc  *navigation.Service
	DashboardUC    *analytics.DashboardUseCase
	GRNUC          *usecase.GRNUseCase
	DeliveryUC     *usecase.DeliveryUseCase
	InventoryUC    *usecase.InventoryUseCase
	ConsultationUC *usecase.ConsultationUseCase
	UserUC         *usecase.UserUseCase
	SettingsUC     *usecase.SettingsUseCase
	AuditUC        *audit.AuditUseCase
	ReportsUC      *reports.ReportsUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Cada grupo de módulo lleva el guard de
// la tabla de políticas: la misma tabla que arma el sidebar decide el acceso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login y cuentas demo son públicos; logout y sesión requieren token.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.AuditUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/demo-accounts", authHandler.DemoAccounts)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/session", AuthMiddleware(deps.JWTSecret), authHandler.Session)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Navegación: cualquier rol autenticado; la política se valida por destino.
	navHandler := NewNavigationHandler(deps.NavigationSvc, deps.AuditUC)
	protected.Get("/navigation", navHandler.Current)
	protected.Post("/navigation", navHandler.Navigate)

	// Dashboard (todos los roles)
	dashboard := protected.Group("/dashboard", RequireModule(rbac.ModuleDashboard, deps.AuditUC))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Summary)

	// GRN (Admin, Staff)
	grn := protected.Group("/grn", RequireModule(rbac.ModuleGRN, deps.AuditUC))
	grnHandler := NewGRNHandler(deps.GRNUC, deps.AuditUC)
	grn.Post("/", grnHandler.Create)
	grn.Get("/", grnHandler.List)
	grn.Get("/:id", grnHandler.GetByID)
	grn.Patch("/:id/status", grnHandler.UpdateStatus)

	// Delivery (Admin, Staff)
	delivery := protected.Group("/delivery", RequireModule(rbac.ModuleDelivery, deps.AuditUC))
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC, deps.AuditUC)
	delivery.Post("/", deliveryHandler.Create)
	delivery.Get("/", deliveryHandler.List)
	delivery.Get("/:id", deliveryHandler.GetByID)
	delivery.Patch("/:id/status", deliveryHandler.UpdateStatus)

	// Inventory (Admin, Staff, Vet)
	inventory := protected.Group("/inventory", RequireModule(rbac.ModuleInventory, deps.AuditUC))
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.AuditUC)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/expiring", inventoryHandler.Expiring)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Post("/:id/adjust", inventoryHandler.AdjustStock)

	// Consultations (Admin, Vet)
	consultations := protected.Group("/consultations", RequireModule(rbac.ModuleConsultations, deps.AuditUC))
	consultationHandler := NewConsultationHandler(deps.ConsultationUC, deps.AuditUC)
	consultations.Post("/", consultationHandler.Create)
	consultations.Get("/", consultationHandler.List)
	consultations.Get("/:id", consultationHandler.GetByID)
	consultations.Patch("/:id", consultationHandler.Update)

	// Users (solo Admin)
	users := protected.Group("/users", RequireModule(rbac.ModuleUsers, deps.AuditUC))
	userHandler := NewUserHandler(deps.UserUC, deps.AuditUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Settings (solo Admin)
	settings := protected.Group("/settings", RequireModule(rbac.ModuleSettings, deps.AuditUC))
	settingsHandler := NewSettingsHandler(deps.SettingsUC, deps.AuditUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)

	// Audit (Admin, Auditor)
	auditGroup := protected.Group("/audit", RequireModule(rbac.ModuleAudit, deps.AuditUC))
	auditHandler := NewAuditHandler(deps.AuditUC)
	auditGroup.Get("/", auditHandler.List)
	auditGroup.Get("/export", auditHandler.Export)

	// Reports (Admin, Auditor)
	reportsGroup := protected.Group("/reports", RequireModule(rbac.ModuleReports, deps.AuditUC))
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	reportsGroup.Get("/operations", reportsHandler.Operations)
	reportsGroup.Get("/grn/:id/pdf", reportsHandler.GRNDocument)
	reportsGroup.Get("/delivery/:id/pdf", reportsHandler.DeliveryDocument)
}
