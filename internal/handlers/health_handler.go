package handlers

import (
	"context"
	"net/http"
	"time"

	"budget-dashboard/internal/errors"
	"budget-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db   *gorm.DB
	feed services.TransactionFeedInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB, feed services.TransactionFeedInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, feed: feed}
}

// HealthCheck reports API and database connectivity
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,streamSubscribers=int} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":            "healthy",
		"time":              time.Now().UTC().Format(time.RFC3339),
		"streamSubscribers": h.feed.SubscriberCount(),
	})
}
