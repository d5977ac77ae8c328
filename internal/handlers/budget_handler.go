package handlers

import (
	"net/http"
	"strings"

	"budget-dashboard/internal/dto"
	"budget-dashboard/internal/errors"
	"budget-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles the budget configuration endpoints
type BudgetHandler struct {
	budgetStore services.BudgetStoreInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetStore services.BudgetStoreInterface) *BudgetHandler {
	return &BudgetHandler{budgetStore: budgetStore}
}

// GetBudgets returns the active budget configuration
// @Summary List budgets
// @Tags Budgets
// @Produce json
// @Success 200 {object} dto.BudgetsResponse
// @Router /budgets [get]
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.BudgetsResponse{Budgets: h.budgetStore.Current()})
}

// UpdateBudgets replaces the whole budget configuration and persists it
// @Summary Replace budgets
// @Description Non-numeric budget values are stored as 0. Missing colors fall back to the category color.
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.UpdateBudgetsRequest true "Complete budget list"
// @Success 200 {object} dto.BudgetsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation error"
// @Failure 422 {object} errors.ErrorResponse "BUDGET_002 - Duplicate budget category"
// @Router /budgets [put]
func (h *BudgetHandler) UpdateBudgets(c echo.Context) error {
	var req dto.UpdateBudgetsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	seen := make(map[string]struct{}, len(req.Budgets))
	for _, entry := range req.Budgets {
		label := strings.TrimSpace(entry.Category)
		if _, dup := seen[label]; dup {
			return SendError(c, errors.BudgetDuplicate, errors.WithDetails(label))
		}
		seen[label] = struct{}{}
	}

	budgets := h.budgetStore.ReplaceAll(c.Request().Context(), req.ToModels())

	return c.JSON(http.StatusOK, dto.BudgetsResponse{Budgets: budgets})
}
