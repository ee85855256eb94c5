package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ddik-sports/ddik-api/internal/application/auth"
	"github.com/ddik-sports/ddik-api/internal/application/incidents"
	"github.com/ddik-sports/ddik-api/internal/application/ledger"
	"github.com/ddik-sports/ddik-api/internal/application/orders"
	"github.com/ddik-sports/ddik-api/internal/application/reports"
	"github.com/ddik-sports/ddik-api/internal/application/usecase"
	"github.com/ddik-sports/ddik-api/internal/domain/access"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	NotificationUC *usecase.NotificationUseCase
	StockLedger    *ledger.StockLedgerUseCase
	MovementQuery  *ledger.MovementQueryUseCase
	OrderUC        *orders.OrderUseCase
	IncidentUC     *incidents.IncidentUseCase
	AuthUC         *auth.AuthUseCase
	DashboardUC    *reports.DashboardUseCase
	PDFUC          *reports.PDFUseCase
	JWTSecret      string
}

// Router registra as rotas da API. Cada grupo protegido exige a capability
// correspondente da tabela de acesso, a mesma que decide a navegação.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth e navegação (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	navHandler := NewNavigationHandler(deps.JWTSecret)
	nav := api.Group("/navigation")
	nav.Get("/route", navHandler.Route)
	nav.Get("/home", navHandler.Home)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil do usuário autenticado
	protected.Get("/auth/me", authHandler.GetProfile)
	protected.Put("/auth/me", authHandler.UpdateProfile)

	// Catálogo (qualquer papel com catalog.read, incluindo cliente)
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Get("/catalog", RequireCapability(access.CapCatalogRead), productHandler.Catalog)

	// Products (gestão de estoque)
	products := protected.Group("/products", RequireCapability(access.CapProductsManage))
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock movements (Ledger)
	movementHandler := NewMovementHandler(deps.StockLedger, deps.MovementQuery)
	movements := protected.Group("/movements", RequireCapability(access.CapLedgerApply))
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	products.Get("/:id/movements", movementHandler.ListByProduct)

	// Orders (encomendas)
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup := protected.Group("/orders", RequireCapability(access.CapOrdersManage))
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Post("/:id/complete", orderHandler.Complete)
	ordersGroup.Post("/:id/cancel", orderHandler.Cancel)

	// Incidents (ocorrências)
	incidentHandler := NewIncidentHandler(deps.IncidentUC)
	incidentsGroup := protected.Group("/incidents", RequireCapability(access.CapIncidentsManage))
	incidentsGroup.Post("/", incidentHandler.Report)
	incidentsGroup.Get("/", incidentHandler.List)
	incidentsGroup.Put("/:id/status", incidentHandler.UpdateStatus)

	// Dashboard e relatórios. O dashboard tem capability própria (funcionario
	// o vê, mas não os relatórios), por isso fica fora do grupo /reports.
	reportHandler := NewReportHandler(deps.DashboardUC, deps.PDFUC)
	protected.Get("/reports/dashboard", RequireCapability(access.CapDashboardRead), reportHandler.Dashboard)
	reportsGroup := protected.Group("/reports", RequireCapability(access.CapReportsRead))
	reportsGroup.Get("/movements", reportHandler.Movements)
	reportsGroup.Get("/sales/pdf", reportHandler.ExportSalesPDF)

	// Notifications (qualquer usuário autenticado)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications := protected.Group("/notifications")
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	// Invitations (admin/gerente)
	invitationHandler := NewInvitationHandler(deps.AuthUC)
	invitations := protected.Group("/invitations", RequireCapability(access.CapInvitationsManage))
	invitations.Post("/", invitationHandler.Create)
	invitations.Get("/", invitationHandler.List)
}
