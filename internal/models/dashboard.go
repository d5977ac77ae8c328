package models

import "time"

// Dashboard is every derived view recomputed from one transaction snapshot
type Dashboard struct {
	Period    string            `json:"period"`
	Stats     LifetimeStats     `json:"stats"`
	Budgets   []BudgetCategory  `json:"budgets"`
	Spending  []CategorySpend   `json:"spending"`
	Insights  []Insight         `json:"insights"`
	Breakdown CategoryBreakdown `json:"breakdown"`
	Generated time.Time         `json:"generatedAt"`
}

// PeriodLabel formats the reporting period of a reference date as YYYY-MM
func PeriodLabel(ref time.Time) string {
	return ref.Format("2006-01")
}
