package handlers

import (
	"net/http"

	"budget-dashboard/internal/dto"
	"budget-dashboard/internal/errors"
	"budget-dashboard/internal/models"
	"budget-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the derived dashboard views. Every request
// recomputes from the current transaction snapshot.
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns every view in one payload
// @Summary Dashboard
// @Tags Dashboard
// @Produce json
// @Param month query string false "Reporting month (YYYY-MM), defaults to the current month"
// @Success 200 {object} models.Dashboard
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	return h.respond(c, func(d *models.Dashboard) interface{} {
		return d
	})
}

// GetStats returns lifetime income, expenses and net total
// @Summary Lifetime stats
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.LifetimeStats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c echo.Context) error {
	return h.respond(c, func(d *models.Dashboard) interface{} {
		return d.Stats
	})
}

// GetSpending returns spending per budgeted category for the reporting month
// @Summary Budget spending
// @Tags Dashboard
// @Produce json
// @Param month query string false "Reporting month (YYYY-MM)"
// @Success 200 {object} dto.SpendingResponse
// @Router /dashboard/spending [get]
func (h *DashboardHandler) GetSpending(c echo.Context) error {
	return h.respond(c, func(d *models.Dashboard) interface{} {
		return dto.SpendingResponse{Period: d.Period, Spending: d.Spending}
	})
}

// GetInsights returns the budget insights for the reporting month
// @Summary Insights
// @Tags Dashboard
// @Produce json
// @Param month query string false "Reporting month (YYYY-MM)"
// @Success 200 {object} dto.InsightsResponse
// @Router /dashboard/insights [get]
func (h *DashboardHandler) GetInsights(c echo.Context) error {
	return h.respond(c, func(d *models.Dashboard) interface{} {
		return dto.InsightsResponse{Period: d.Period, Insights: d.Insights}
	})
}

// GetBreakdown returns the lifetime category chart data
// @Summary Category breakdown
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.CategoryBreakdown
// @Router /dashboard/breakdown [get]
func (h *DashboardHandler) GetBreakdown(c echo.Context) error {
	return h.respond(c, func(d *models.Dashboard) interface{} {
		return d.Breakdown
	})
}

func (h *DashboardHandler) respond(c echo.Context, view func(*models.Dashboard) interface{}) error {
	var query dto.DashboardQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	ctx := c.Request().Context()

	var (
		dashboard *models.Dashboard
		err       error
	)
	if ref, ok := query.ReferenceDate(); ok {
		dashboard, err = h.dashboardService.GetDashboardAt(ctx, ref)
	} else {
		dashboard, err = h.dashboardService.GetDashboard(ctx)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, view(dashboard))
}
