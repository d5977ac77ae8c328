package models

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// PercentageOverBudgetSentinel is reported as percentage used when a category
// has spending but no positive budget to measure it against
var PercentageOverBudgetSentinel = decimal.NewFromInt(999)

// BudgetCategory is a user-configured monthly spending limit for one category label
type BudgetCategory struct {
	Category string          `json:"category" yaml:"category"`
	Budget   decimal.Decimal `json:"budget" yaml:"budget"`
	Color    string          `json:"color" yaml:"color"`
}

// CategorySpend is the current-period spending of one budgeted category
type CategorySpend struct {
	Category       string          `json:"category"`
	Budget         decimal.Decimal `json:"budget"`
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	PercentageUsed decimal.Decimal `json:"percentageUsed"`
	Unbounded      bool            `json:"unbounded"`
	Color          string          `json:"color"`
}

// IsOverBudget reports whether spending strictly exceeds the budget
func (c CategorySpend) IsOverBudget() bool {
	return c.Spent.GreaterThan(c.Budget)
}

// DefaultBudgets returns a fresh copy of the budgets used when nothing has been saved yet
func DefaultBudgets() []BudgetCategory {
	return []BudgetCategory{
		{Category: CategoryFoodDining, Budget: decimal.NewFromInt(500), Color: ColorFoodDining},
		{Category: CategoryTransportation, Budget: decimal.NewFromInt(300), Color: ColorTransportation},
		{Category: CategoryShopping, Budget: decimal.NewFromInt(400), Color: ColorShopping},
		{Category: CategoryEntertainment, Budget: decimal.NewFromInt(200), Color: ColorEntertainment},
		{Category: CategoryHealthcare, Budget: decimal.NewFromInt(200), Color: ColorHealthcare},
		{Category: CategoryUtilities, Budget: decimal.NewFromInt(300), Color: ColorUtilities},
		{Category: CategoryHousing, Budget: decimal.NewFromInt(1200), Color: ColorHousing},
		{Category: CategoryOther, Budget: decimal.NewFromInt(200), Color: ColorOther},
	}
}

// ParseBudgetAmount coerces a user supplied budget value to a number.
// Anything that is not numeric, including nil and non-finite floats, becomes 0.
func ParseBudgetAmount(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero
		}
		return *v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(v)
	case float32:
		return ParseBudgetAmount(float64(v))
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		return ParseBudgetAmount(v.String())
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
