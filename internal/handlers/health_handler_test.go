package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"budget-dashboard/internal/database"
	"budget-dashboard/internal/errors"
	"budget-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_Healthy(t *testing.T) {
	db := database.SetupTestDB(t)
	feed := services.NewTransactionFeed()
	_, unsubscribe := feed.Subscribe()
	defer unsubscribe()

	handler := NewHealthCheckHandler(db.DB, feed)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(1), body["streamSubscribers"])
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	db := database.SetupTestDB(t)
	require.NoError(t, db.Close())

	handler := NewHealthCheckHandler(db.DB, services.NewTransactionFeed())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	c.Set(TraceIDContextKey, "trace-123")

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.SystemServiceUnavailable), resp.Error.Code)
	assert.Equal(t, "trace-123", resp.Error.TraceID)
}
