// Package bootstrap wires repositories and services for the commands.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budget-dashboard/internal/config"
	"budget-dashboard/internal/database"
	"budget-dashboard/internal/repositories"
	"budget-dashboard/internal/services"
)

// Container holds the dependency graph shared by the API server and the CLI
type Container struct {
	DB *database.DB

	TransactionRepo repositories.TransactionRepositoryInterface
	SettingRepo     repositories.SettingRepositoryInterface

	Metrics      services.MetricsRecorderInterface
	Clock        services.Clock
	Feed         services.TransactionFeedInterface
	Classifier   services.CategoryServiceInterface
	Budgets      services.BudgetStoreInterface
	Transactions services.TransactionServiceInterface
	Dashboard    services.DashboardServiceInterface
	Generator    services.TransactionGeneratorInterface
}

// Option customizes a Container before it is assembled
type Option func(*Container)

// WithMetrics replaces the no-op recorder
func WithMetrics(metrics services.MetricsRecorderInterface) Option {
	return func(c *Container) { c.Metrics = metrics }
}

// WithClock pins the reporting period reference, mainly for tests
func WithClock(clock services.Clock) Option {
	return func(c *Container) { c.Clock = clock }
}

// New assembles the services on top of an open database
func New(db *database.DB, cfg *config.Config, opts ...Option) *Container {
	c := &Container{
		DB:      db,
		Metrics: services.NoopMetrics{},
		Clock:   services.SystemClock{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.TransactionRepo = repositories.NewTransactionRepository(db.DB)
	c.SettingRepo = repositories.NewSettingRepository(db.DB)

	c.Feed = services.NewTransactionFeed()
	c.Classifier = services.NewCategoryService()
	c.Budgets = services.NewBudgetStore(c.SettingRepo, c.Metrics, cfg.Budget.SettingsKey)
	c.Transactions = services.NewTransactionService(c.TransactionRepo, c.Feed, c.Metrics)
	c.Dashboard = services.NewDashboardService(
		c.TransactionRepo,
		c.Budgets,
		services.NewSpendingService(c.Classifier),
		services.NewInsightService(),
		services.NewBreakdownService(c.Classifier),
		c.Clock,
		c.Metrics,
	)
	c.Generator = services.NewTransactionGenerator(uint64(time.Now().UnixNano()))

	return c
}

// Open connects to the configured database, assembles the services and loads
// the persisted budget configuration
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*Container, error) {
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	c := New(db, cfg, opts...)
	budgets := c.Budgets.Load(ctx)

	slog.Info("budget configuration loaded", "categories", len(budgets), "driver", cfg.Database.Driver)

	return c, nil
}

// Close releases the database connection
func (c *Container) Close() error {
	return c.DB.Close()
}
