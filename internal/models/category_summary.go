package models

import "github.com/shopspring/decimal"

// CategorySummary is one slice of the lifetime category chart
type CategorySummary struct {
	Category string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Color    string          `json:"color"`
}

// CategoryShare is an expense category's share of total expenses, in percent
type CategoryShare struct {
	Category   string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
	Color      string          `json:"color"`
}

// CategoryBreakdown is the lifetime per-category view across every transaction
type CategoryBreakdown struct {
	Categories    []CategorySummary `json:"categories"`
	Expenses      []CategorySummary `json:"expenses"`
	TotalExpenses decimal.Decimal   `json:"totalExpenses"`
	TopCategories []CategorySummary `json:"topCategories"`
	Distribution  []CategoryShare   `json:"distribution"`
}
