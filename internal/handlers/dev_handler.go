package handlers

import (
	"net/http"
	"sync"

	"budget-dashboard/internal/dto"
	"budget-dashboard/internal/errors"
	"budget-dashboard/internal/models"
	"budget-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultDemoCount = 100

// DevHandler handles development-only endpoints.
// The router registers it only outside production.
type DevHandler struct {
	transactionService services.TransactionServiceInterface
	clock              services.Clock

	// the generator's random source is not safe for concurrent use
	mu        sync.Mutex
	generator services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionService services.TransactionServiceInterface,
	generator services.TransactionGeneratorInterface,
	clock services.Clock,
) *DevHandler {
	return &DevHandler{
		transactionService: transactionService,
		generator:          generator,
		clock:              clock,
	}
}

// GenerateDemoData inserts generated transactions spread over a reporting month
// and the month before it
// @Summary Generate demo transactions
// @Tags Development
// @Produce json
// @Param count query int false "Number of transactions (1-1000, default 100)"
// @Param month query string false "Reference month (YYYY-MM, default current month)"
// @Success 201 {object} dto.GenerateDemoDataResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/dev/transactions/generate [post]
func (h *DevHandler) GenerateDemoData(c echo.Context) error {
	var query dto.GenerateDemoDataQuery
	// echo's Bind ignores the query string on POST
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	// an explicit count=0 must fail validation, so only an absent parameter defaults
	if c.QueryParam("count") == "" {
		query.Count = defaultDemoCount
	}
	if err := c.Validate(&query); err != nil {
		return SendValidationError(c, err)
	}

	ref, ok := query.ReferenceDate()
	if !ok {
		ref = h.clock.Now()
	}

	h.mu.Lock()
	transactions := h.generator.Generate(query.Count, ref)
	h.mu.Unlock()

	created, err := h.transactionService.Import(c.Request().Context(), transactions)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.GenerateDemoDataResponse{
		Message:             "demo data generated successfully",
		TransactionsCreated: created,
		Period:              models.PeriodLabel(ref),
	})
}
