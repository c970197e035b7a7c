package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-api/internal/domain/entity"
)

// RouterDeps dependencias para el router. Los use cases concretos
// (*usecase.CustomerUseCase, *analytics.AssistantUseCase, ...) satisfacen estos contratos.
type RouterDeps struct {
	AuthUC       authService
	UserUC       userService
	CustomerUC   customerService
	OrderUC      orderService
	FinanceUC    financeService
	DemandUC     demandService
	SupplierUC   supplierService
	PriceTableUC priceTableService
	SettingsUC   settingsService
	DashboardUC  dashboardService
	AssistantUC  assistantService
	LoginLimiter *LoginLimiter
	Session      SessionCookie
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	if deps.LoginLimiter != nil {
		api.Post("/login", deps.LoginLimiter.Middleware(), authHandler.Login)
	} else {
		api.Post("/login", authHandler.Login)
	}
	api.Post("/logout", authHandler.Logout)

	// Rutas protegidas (sesión por Bearer Token o cookie)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Session.Name))

	protected.Get("/me", authHandler.Me)
	protected.Post("/change-password", authHandler.ChangePassword)

	// Usuarios (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", requireUUIDParam, userHandler.GetByID)
	users.Put("/:id", requireUUIDParam, userHandler.Update)
	users.Delete("/:id", requireUUIDParam, userHandler.Delete)

	// Clientes
	customers := protected.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/stats", customerHandler.Stats)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", requireUUIDParam, customerHandler.GetByID)
	customers.Put("/:id", requireUUIDParam, customerHandler.Update)
	customers.Delete("/:id", requireUUIDParam, customerHandler.Delete)

	// Pedidos
	orders := protected.Group("/pedidos")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/stats", orderHandler.Stats)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", requireUUIDParam, orderHandler.GetByID)
	orders.Put("/:id", requireUUIDParam, orderHandler.Update)
	orders.Delete("/:id", requireUUIDParam, orderHandler.Delete)

	// Demandas de social media
	demands := protected.Group("/demandas-social")
	demandHandler := NewSocialDemandHandler(deps.DemandUC)
	demands.Get("/stats", demandHandler.Stats)
	demands.Get("/", demandHandler.List)
	demands.Post("/", demandHandler.Create)
	demands.Get("/:id", requireUUIDParam, demandHandler.GetByID)
	demands.Put("/:id", requireUUIDParam, demandHandler.Update)
	demands.Delete("/:id", requireUUIDParam, demandHandler.Delete)

	// Financeiro
	finance := protected.Group("/financeiro")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	finance.Get("/stats", financeHandler.Stats)
	finance.Get("/fluxo-caixa", financeHandler.CashFlow)
	finance.Get("/", financeHandler.List)
	finance.Post("/", financeHandler.Create)
	finance.Get("/:id", requireUUIDParam, financeHandler.GetByID)
	finance.Put("/:id", requireUUIDParam, financeHandler.Update)
	finance.Delete("/:id", requireUUIDParam, financeHandler.Delete)

	// Fornecedores
	suppliers := protected.Group("/fornecedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/stats", supplierHandler.Stats)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", requireUUIDParam, supplierHandler.GetByID)
	suppliers.Put("/:id", requireUUIDParam, supplierHandler.Update)
	suppliers.Delete("/:id", requireUUIDParam, supplierHandler.Delete)

	// Tabela de preços
	prices := protected.Group("/tabela-precos")
	priceHandler := NewPriceTableHandler(deps.PriceTableUC)
	prices.Get("/stats", priceHandler.Stats)
	prices.Get("/", priceHandler.List)
	prices.Post("/", priceHandler.Create)
	prices.Get("/:id", requireUUIDParam, priceHandler.GetByID)
	prices.Put("/:id", requireUUIDParam, priceHandler.Update)
	prices.Delete("/:id", requireUUIDParam, priceHandler.Delete)

	// Dashboard y configuración
	protected.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).GetSummary)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/configuracao", settingsHandler.Get)
	protected.Put("/configuracao", settingsHandler.Update)

	// Asistente de insights
	assistant := protected.Group("/assistente-ia")
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	assistant.Get("/analise-geral", assistantHandler.GeneralAnalysis)
	assistant.Get("/tendencias", assistantHandler.Trends)
	assistant.Get("/sugestoes", assistantHandler.Suggestions)
	assistant.Get("/relatorio-completo", assistantHandler.FullReport)
	assistant.Get("/relatorio-completo/pdf", assistantHandler.FullReportPDF)
	assistant.Post("/pergunta", assistantHandler.Ask)
}
