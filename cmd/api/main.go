package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/gestao-api/internal/application/analytics"
	"github.com/jhoicas/gestao-api/internal/application/auth"
	"github.com/jhoicas/gestao-api/internal/application/usecase"
	inframetrics "github.com/jhoicas/gestao-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/gestao-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gestao-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestao-api/internal/interfaces/http"
	"github.com/jhoicas/gestao-api/pkg/config"
	"github.com/jhoicas/gestao-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: las sesiones no podrán emitirse")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	financialRepo := postgres.NewFinancialRepository(pool)
	demandRepo := postgres.NewSocialDemandRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	priceRepo := postgres.NewPriceTableRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Component("auth"))
	userUC := usecase.NewUserUseCase(userRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, analyticsRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, customerRepo, analyticsRepo)
	financeUC := usecase.NewFinanceUseCase(financialRepo, orderRepo, analyticsRepo)
	demandUC := usecase.NewSocialDemandUseCase(demandRepo, customerRepo, orderRepo, analyticsRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	priceUC := usecase.NewPriceTableUseCase(priceRepo, supplierRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	// PDF del informe completo del asistente
	reportPDF := infrapdf.NewMarotoReportGenerator()
	assistantUC := appanalytics.NewAssistantUseCase(
		analyticsRepo, settingsRepo, reportPDF, inframetrics.Assistant{}, log.Component("assistant"),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Gestão API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		CustomerUC:   customerUC,
		OrderUC:      orderUC,
		FinanceUC:    financeUC,
		DemandUC:     demandUC,
		SupplierUC:   supplierUC,
		PriceTableUC: priceUC,
		SettingsUC:   settingsUC,
		DashboardUC:  dashboardUC,
		AssistantUC:  assistantUC,
		LoginLimiter: httpRouter.NewLoginLimiter(cfg.Session.LoginRatePerMinute, cfg.Session.LoginBurst),
		Session: httpRouter.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		},
		JWTSecret: cfg.JWT.Secret,
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
