package services

import (
	"time"

	"budget-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type spendingService struct {
	classifier CategoryServiceInterface
}

// NewSpendingService creates a new SpendingServiceInterface instance
func NewSpendingService(classifier CategoryServiceInterface) SpendingServiceInterface {
	return &spendingService{
		classifier: classifier,
	}
}

// SelectCurrentPeriodExpenses keeps transactions dated in referenceDate's
// calendar month with a strictly negative amount, preserving input order
func (s *spendingService) SelectCurrentPeriodExpenses(transactions []models.Transaction, referenceDate time.Time) []models.Transaction {
	selected := make([]models.Transaction, 0, len(transactions))

	for _, txn := range transactions {
		if txn.IsExpense() && txn.InPeriod(referenceDate) {
			selected = append(selected, txn)
		}
	}

	return selected
}

// Aggregate returns one CategorySpend per budget, in the order the budgets are given
func (s *spendingService) Aggregate(transactions []models.Transaction, budgets []models.BudgetCategory, referenceDate time.Time) []models.CategorySpend {
	spentByCategory := make(map[string]decimal.Decimal)

	for _, txn := range s.SelectCurrentPeriodExpenses(transactions, referenceDate) {
		category := s.classifier.Classify(txn.Description)
		spentByCategory[category] = spentByCategory[category].Add(txn.Amount.Abs())
	}

	results := make([]models.CategorySpend, 0, len(budgets))
	for _, budget := range budgets {
		spent := spentByCategory[budget.Category]
		percentage, unbounded := percentageUsed(spent, budget.Budget)

		results = append(results, models.CategorySpend{
			Category:       budget.Category,
			Budget:         budget.Budget,
			Spent:          spent,
			Remaining:      budget.Budget.Sub(spent),
			PercentageUsed: percentage,
			Unbounded:      unbounded,
			Color:          budget.Color,
		})
	}

	return results
}

// LifetimeStats folds every transaction regardless of date
func (s *spendingService) LifetimeStats(transactions []models.Transaction) models.LifetimeStats {
	stats := models.LifetimeStats{
		Total:    decimal.Zero,
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}

	for _, txn := range transactions {
		stats.Total = stats.Total.Add(txn.Amount)
		switch {
		case txn.IsIncome():
			stats.Income = stats.Income.Add(txn.Amount)
		case txn.IsExpense():
			stats.Expenses = stats.Expenses.Add(txn.Amount.Abs())
		}
	}

	return stats
}

// percentageUsed never divides by a non-positive budget. Without a positive
// budget any spending reports the over-budget sentinel.
func percentageUsed(spent, budget decimal.Decimal) (decimal.Decimal, bool) {
	if budget.IsPositive() {
		return spent.Div(budget).Mul(hundred), false
	}
	if spent.IsZero() {
		return decimal.Zero, false
	}
	return models.PercentageOverBudgetSentinel, true
}
