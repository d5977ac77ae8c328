package models

import "github.com/shopspring/decimal"

// LifetimeStats sums every transaction ever recorded.
// Expenses is reported as a positive magnitude.
type LifetimeStats struct {
	Total    decimal.Decimal `json:"total"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}
