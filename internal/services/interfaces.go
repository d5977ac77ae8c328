package services

import (
	"context"
	"time"

	"budget-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryServiceInterface assigns exactly one category label to a free-text description
type CategoryServiceInterface interface {
	// Classify returns the label of the first rule with a matching keyword, or Other
	Classify(description string) string
	// BatchClassify classifies every transaction regardless of its sign
	BatchClassify(transactions []models.Transaction) []models.ClassifiedTransaction
	// Rules returns a copy of the ordered rule table
	Rules() []CategoryRule
}

// BudgetStoreInterface holds the user's per-category monthly budgets
type BudgetStoreInterface interface {
	Load(ctx context.Context) []models.BudgetCategory
	ReplaceAll(ctx context.Context, entries []models.BudgetCategory) []models.BudgetCategory
	Reset(ctx context.Context) ([]models.BudgetCategory, error)
	Current() []models.BudgetCategory
}

// SpendingServiceInterface filters the reporting period and aggregates spending per budget
type SpendingServiceInterface interface {
	SelectCurrentPeriodExpenses(transactions []models.Transaction, referenceDate time.Time) []models.Transaction
	Aggregate(transactions []models.Transaction, budgets []models.BudgetCategory, referenceDate time.Time) []models.CategorySpend
	LifetimeStats(transactions []models.Transaction) models.LifetimeStats
}

type InsightServiceInterface interface {
	GenerateInsights(spending []models.CategorySpend) []models.Insight
}

// BreakdownServiceInterface builds the lifetime category chart data
type BreakdownServiceInterface interface {
	Breakdown(transactions []models.Transaction) models.CategoryBreakdown
}

// TransactionServiceInterface manages the transaction snapshot the dashboard is computed from
type TransactionServiceInterface interface {
	Create(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	// Import stores a batch atomically and publishes one snapshot
	Import(ctx context.Context, transactions []models.Transaction) (int, error)
	Update(ctx context.Context, id uuid.UUID, changes *models.Transaction) (*models.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
	// ListPage returns one page of a date window and the window's total size
	ListPage(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
}

// TransactionFeedInterface fans out full transaction snapshots to live subscribers
type TransactionFeedInterface interface {
	Subscribe() (<-chan []models.Transaction, func())
	Publish(snapshot []models.Transaction)
	SubscriberCount() int
}

// DashboardServiceInterface recomputes every derived dashboard view
type DashboardServiceInterface interface {
	// GetDashboard computes the dashboard for the current clock time
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
	// GetDashboardAt computes the dashboard for an explicit reference date
	GetDashboardAt(ctx context.Context, referenceDate time.Time) (*models.Dashboard, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TransactionGeneratorInterface generates realistic transaction data for demos and tests
type TransactionGeneratorInterface interface {
	Generate(count int, referenceDate time.Time) []models.Transaction
	GetMerchantPool() []models.MerchantInfo
	SelectRandomMerchant() models.MerchantInfo
	GenerateAmount(category string) decimal.Decimal
	GenerateDate(referenceDate time.Time) time.Time
}

// Clock supplies the reference date used to pick the reporting period
type Clock interface {
	Now() time.Time
}
