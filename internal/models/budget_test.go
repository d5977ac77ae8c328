package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBudgets(t *testing.T) {
	budgets := DefaultBudgets()

	assert.Len(t, budgets, 8)
	assert.Equal(t, CategoryFoodDining, budgets[0].Category)
	assert.True(t, decimal.NewFromInt(500).Equal(budgets[0].Budget))
	assert.Equal(t, CategoryHousing, budgets[6].Category)
	assert.True(t, decimal.NewFromInt(1200).Equal(budgets[6].Budget))
	assert.Equal(t, CategoryOther, budgets[7].Category)

	for _, b := range budgets {
		assert.True(t, IsBudgetableCategory(b.Category), b.Category)
		assert.Equal(t, CategoryColor(b.Category), b.Color)
	}

	// callers get their own copy
	budgets[0].Budget = decimal.Zero
	assert.True(t, decimal.NewFromInt(500).Equal(DefaultBudgets()[0].Budget))
}

func TestParseBudgetAmount(t *testing.T) {
	amount := decimal.NewFromInt(75)

	tests := []struct {
		name     string
		value    any
		expected decimal.Decimal
	}{
		{"nil", nil, decimal.Zero},
		{"float", 250.5, decimal.NewFromFloat(250.5)},
		{"int", 300, decimal.NewFromInt(300)},
		{"int64", int64(42), decimal.NewFromInt(42)},
		{"numeric string", "120.25", decimal.RequireFromString("120.25")},
		{"padded string", " 80 ", decimal.NewFromInt(80)},
		{"non numeric string", "abc", decimal.Zero},
		{"empty string", "", decimal.Zero},
		{"json number", json.Number("99.9"), decimal.RequireFromString("99.9")},
		{"decimal", amount, amount},
		{"decimal pointer", &amount, amount},
		{"nil decimal pointer", (*decimal.Decimal)(nil), decimal.Zero},
		{"NaN", math.NaN(), decimal.Zero},
		{"infinity", math.Inf(1), decimal.Zero},
		{"bool", true, decimal.Zero},
		{"negative", -50.0, decimal.NewFromInt(-50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBudgetAmount(tt.value)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestCategorySpend_IsOverBudget(t *testing.T) {
	spend := CategorySpend{Budget: decimal.NewFromInt(100), Spent: decimal.NewFromInt(100)}
	assert.False(t, spend.IsOverBudget())

	spend.Spent = decimal.RequireFromString("100.01")
	assert.True(t, spend.IsOverBudget())
}

func TestPercentageOverBudgetSentinel(t *testing.T) {
	assert.True(t, PercentageOverBudgetSentinel.GreaterThanOrEqual(decimal.NewFromInt(100)))
}
