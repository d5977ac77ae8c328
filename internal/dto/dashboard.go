package dto

import (
	"time"

	"budget-dashboard/internal/models"
)

// DashboardQuery selects the reporting month. Empty means the current month.
type DashboardQuery struct {
	Month string `query:"month" validate:"omitempty,report_period"`
}

// ReferenceDate resolves the month to its first day. ok is false when no
// month was requested and the current month applies.
func (q DashboardQuery) ReferenceDate() (ref time.Time, ok bool) {
	if q.Month == "" {
		return time.Time{}, false
	}
	ref, err := time.Parse("2006-01", q.Month)
	if err != nil {
		return time.Time{}, false
	}
	return ref, true
}

// SpendingResponse is the per-budget view of one reporting month
type SpendingResponse struct {
	Period   string                 `json:"period"`
	Spending []models.CategorySpend `json:"spending"`
}

// InsightsResponse lists the insights of one reporting month
type InsightsResponse struct {
	Period   string           `json:"period"`
	Insights []models.Insight `json:"insights"`
}

// GenerateDemoDataQuery sizes a batch of generated demo transactions
type GenerateDemoDataQuery struct {
	Count int    `query:"count" validate:"min=1,max=1000"`
	Month string `query:"month" validate:"omitempty,report_period"`
}

// ReferenceDate resolves the month the generated data is centred on
func (q GenerateDemoDataQuery) ReferenceDate() (time.Time, bool) {
	return DashboardQuery{Month: q.Month}.ReferenceDate()
}

type GenerateDemoDataResponse struct {
	Message             string `json:"message"`
	TransactionsCreated int    `json:"transactionsCreated"`
	Period              string `json:"period"`
}
