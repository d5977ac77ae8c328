package services

import (
	"fmt"
	"strings"

	"budget-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

var (
	nearLimitThreshold   = decimal.NewFromInt(80)
	wellManagedThreshold = decimal.NewFromInt(50)
)

type insightService struct{}

// NewInsightService creates a new InsightServiceInterface instance
func NewInsightService() InsightServiceInterface {
	return &insightService{}
}

// GenerateInsights evaluates the warning, info and success bands in that order.
// Bands with no qualifying category are omitted.
func (s *insightService) GenerateInsights(spending []models.CategorySpend) []models.Insight {
	insights := make([]models.Insight, 0, 3)

	var overBudget, nearLimit, wellManaged []string
	for _, cat := range spending {
		if cat.IsOverBudget() {
			overBudget = append(overBudget, cat.Category)
		}
		if cat.PercentageUsed.GreaterThanOrEqual(nearLimitThreshold) && cat.PercentageUsed.LessThan(hundred) {
			nearLimit = append(nearLimit, cat.Category)
		}
		if cat.PercentageUsed.LessThanOrEqual(wellManagedThreshold) && cat.Spent.IsPositive() {
			wellManaged = append(wellManaged, cat.Category)
		}
	}

	if len(overBudget) > 0 {
		insights = append(insights, models.Insight{
			Type:       models.InsightTypeWarning,
			Message:    fmt.Sprintf("Over budget in %d categories: %s", len(overBudget), strings.Join(overBudget, ", ")),
			Categories: overBudget,
		})
	}

	if len(nearLimit) > 0 {
		insights = append(insights, models.Insight{
			Type:       models.InsightTypeInfo,
			Message:    "Approaching budget limit in: " + strings.Join(nearLimit, ", "),
			Categories: nearLimit,
		})
	}

	if len(wellManaged) > 0 {
		insights = append(insights, models.Insight{
			Type:       models.InsightTypeSuccess,
			Message:    "Well managed spending in: " + strings.Join(wellManaged, ", "),
			Categories: wellManaged,
		})
	}

	return insights
}
