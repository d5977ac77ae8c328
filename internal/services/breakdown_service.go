package services

import (
	"sort"

	"budget-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const topCategoryCount = 3

type breakdownService struct {
	classifier CategoryServiceInterface
}

// NewBreakdownService creates a new BreakdownServiceInterface instance
func NewBreakdownService(classifier CategoryServiceInterface) BreakdownServiceInterface {
	return &breakdownService{
		classifier: classifier,
	}
}

// Breakdown buckets every transaction ever recorded. Positive amounts land in
// Income; expenses are classified by description. An expense whose description
// carries an income keyword is booked to Other, so Expenses, TopCategories and
// Distribution always add up to TotalExpenses.
func (s *breakdownService) Breakdown(transactions []models.Transaction) models.CategoryBreakdown {
	totals := make(map[string]decimal.Decimal)
	totalExpenses := decimal.Zero

	for _, txn := range transactions {
		switch {
		case txn.IsIncome():
			totals[models.CategoryIncome] = totals[models.CategoryIncome].Add(txn.Amount)
		case txn.IsExpense():
			amount := txn.Amount.Abs()
			category := s.classifier.Classify(txn.Description)
			if category == models.CategoryIncome {
				category = models.CategoryOther
			}
			totals[category] = totals[category].Add(amount)
			totalExpenses = totalExpenses.Add(amount)
		}
	}

	breakdown := models.CategoryBreakdown{
		Categories:    make([]models.CategorySummary, 0, len(totals)),
		Expenses:      make([]models.CategorySummary, 0, len(totals)),
		TotalExpenses: totalExpenses,
		TopCategories: make([]models.CategorySummary, 0, topCategoryCount),
		Distribution:  make([]models.CategoryShare, 0, len(totals)),
	}

	for _, category := range models.AllCategories() {
		value := totals[category].Round(2)
		if !value.IsPositive() {
			continue
		}

		summary := models.CategorySummary{
			Category: category,
			Value:    value,
			Color:    models.CategoryColor(category),
		}
		breakdown.Categories = append(breakdown.Categories, summary)

		if category == models.CategoryIncome {
			continue
		}
		breakdown.Expenses = append(breakdown.Expenses, summary)
		breakdown.Distribution = append(breakdown.Distribution, models.CategoryShare{
			Category:   category,
			Value:      value,
			Percentage: shareOf(value, totalExpenses),
			Color:      summary.Color,
		})
	}

	ranked := append([]models.CategorySummary(nil), breakdown.Expenses...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value.GreaterThan(ranked[j].Value)
	})
	if len(ranked) > topCategoryCount {
		ranked = ranked[:topCategoryCount]
	}
	breakdown.TopCategories = append(breakdown.TopCategories, ranked...)

	return breakdown
}

func shareOf(value, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return value.Div(total).Mul(hundred).Round(2)
}
