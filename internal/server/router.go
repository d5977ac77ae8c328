// Package server assembles the echo instance that serves the dashboard API.
package server

import (
	"strings"

	"budget-dashboard/internal/bootstrap"
	"budget-dashboard/internal/config"
	"budget-dashboard/internal/handlers"
	"budget-dashboard/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers the middleware chain and every route
func NewRouter(c *bootstrap.Container, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.Security.RateLimitPerSecond,
		Burst:             cfg.Security.RateLimitBurst,
		Skipper: func(ctx echo.Context) bool {
			return strings.HasSuffix(ctx.Path(), "/stream") || ctx.Path() == "/metrics"
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))

	health := handlers.NewHealthCheckHandler(c.DB.DB, c.Feed)
	transactions := handlers.NewTransactionHandler(c.Transactions, c.Classifier, c.Feed, c.Metrics)
	budgets := handlers.NewBudgetHandler(c.Budgets)
	dashboard := handlers.NewDashboardHandler(c.Dashboard)
	categories := handlers.NewCategoryHandler(c.Classifier)

	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	api.GET("/transactions", transactions.ListTransactions)
	api.POST("/transactions", transactions.CreateTransaction)
	api.GET("/transactions/stream", transactions.StreamTransactions)
	api.GET("/transactions/:id", transactions.GetTransaction)
	api.PUT("/transactions/:id", transactions.UpdateTransaction)
	api.DELETE("/transactions/:id", transactions.DeleteTransaction)

	api.GET("/budgets", budgets.GetBudgets)
	api.PUT("/budgets", budgets.UpdateBudgets)

	api.GET("/dashboard", dashboard.GetDashboard)
	api.GET("/dashboard/stats", dashboard.GetStats)
	api.GET("/dashboard/spending", dashboard.GetSpending)
	api.GET("/dashboard/insights", dashboard.GetInsights)
	api.GET("/dashboard/breakdown", dashboard.GetBreakdown)

	api.GET("/categories", categories.ListCategories)
	api.POST("/categories/classify", categories.Classify)

	if !cfg.IsProduction() {
		dev := handlers.NewDevHandler(c.Transactions, c.Generator, c.Clock)
		api.POST("/dev/transactions/generate", dev.GenerateDemoData)
	}

	return e
}
