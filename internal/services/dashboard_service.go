package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budget-dashboard/internal/models"
	"budget-dashboard/internal/repositories"
)

type dashboardService struct {
	transactions repositories.TransactionRepositoryInterface
	budgets      BudgetStoreInterface
	spending     SpendingServiceInterface
	insights     InsightServiceInterface
	breakdown    BreakdownServiceInterface
	clock        Clock
	metrics      MetricsRecorderInterface
}

// NewDashboardService creates a new DashboardServiceInterface instance
func NewDashboardService(
	transactions repositories.TransactionRepositoryInterface,
	budgets BudgetStoreInterface,
	spending SpendingServiceInterface,
	insights InsightServiceInterface,
	breakdown BreakdownServiceInterface,
	clock Clock,
	metrics MetricsRecorderInterface,
) DashboardServiceInterface {
	return &dashboardService{
		transactions: transactions,
		budgets:      budgets,
		spending:     spending,
		insights:     insights,
		breakdown:    breakdown,
		clock:        clock,
		metrics:      metrics,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	return s.GetDashboardAt(ctx, s.clock.Now())
}

// GetDashboardAt recomputes every view from a fresh snapshot; nothing is cached
func (s *dashboardService) GetDashboardAt(ctx context.Context, referenceDate time.Time) (*models.Dashboard, error) {
	start := time.Now()

	snapshot, err := s.transactions.List(ctx)
	if err != nil {
		s.metrics.IncrementCounter("dashboard_recompute_total", map[string]string{"status": "failed"})
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	budgets := s.budgets.Current()
	spending := s.spending.Aggregate(snapshot, budgets, referenceDate)

	dashboard := &models.Dashboard{
		Period:    models.PeriodLabel(referenceDate),
		Stats:     s.spending.LifetimeStats(snapshot),
		Budgets:   budgets,
		Spending:  spending,
		Insights:  s.insights.GenerateInsights(spending),
		Breakdown: s.breakdown.Breakdown(snapshot),
		Generated: s.clock.Now().UTC(),
	}

	overLimit := 0
	for _, cat := range spending {
		if cat.IsOverBudget() {
			overLimit++
		}
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter("dashboard_recompute_total", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("dashboard_recompute", duration)
	s.metrics.RecordGauge("budget_categories_over_limit", float64(overLimit), nil)

	slog.Debug("dashboard recomputed",
		"period", dashboard.Period,
		"transactions", len(snapshot),
		"over_limit", overLimit,
		"duration_ms", duration.Milliseconds(),
	)

	return dashboard, nil
}
