package dto

import "budget-dashboard/internal/models"

// BudgetEntryRequest is one category limit. Budget accepts numbers and numeric
// strings; anything else counts as 0.
type BudgetEntryRequest struct {
	Category string `json:"category" validate:"budget_category"`
	Budget   any    `json:"budget"`
	Color    string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateBudgetsRequest replaces the whole budget configuration
type UpdateBudgetsRequest struct {
	Budgets []BudgetEntryRequest `json:"budgets" validate:"required,max=50,dive"`
}

// ToModels converts the request entries in order
func (r UpdateBudgetsRequest) ToModels() []models.BudgetCategory {
	budgets := make([]models.BudgetCategory, 0, len(r.Budgets))
	for _, entry := range r.Budgets {
		budgets = append(budgets, models.BudgetCategory{
			Category: entry.Category,
			Budget:   models.ParseBudgetAmount(entry.Budget),
			Color:    entry.Color,
		})
	}
	return budgets
}

// BudgetsResponse lists the active budget configuration
type BudgetsResponse struct {
	Budgets []models.BudgetCategory `json:"budgets"`
}
