package handlers

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"budget-dashboard/internal/dto"
	"budget-dashboard/internal/errors"
	"budget-dashboard/internal/models"
	"budget-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// StreamEventName is the SSE event carrying a full transaction snapshot
	StreamEventName  = "transactionsData"
	defaultHeartbeat = 25 * time.Second
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	classifier         services.CategoryServiceInterface
	feed               services.TransactionFeedInterface
	metrics            services.MetricsRecorderInterface
	heartbeat          time.Duration
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	classifier services.CategoryServiceInterface,
	feed services.TransactionFeedInterface,
	metrics services.MetricsRecorderInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		classifier:         classifier,
		feed:               feed,
		metrics:            metrics,
		heartbeat:          defaultHeartbeat,
	}
}

// ListTransactions returns the transaction snapshot, newest first
// @Summary List transactions
// @Description Without filters the full snapshot is returned. month restricts to one calendar month; offset and limit page through it.
// @Tags Transactions
// @Produce json
// @Param month query string false "Reporting month (YYYY-MM)"
// @Param offset query int false "Number of transactions to skip"
// @Param limit query int false "Page size (max 500)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.ListTransactionsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	ctx := c.Request().Context()

	if query.Month == "" && query.Offset == 0 && query.Limit == 0 {
		transactions, err := h.transactionService.List(ctx)
		if err != nil {
			return SendSystemError(c, err)
		}
		return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
			Transactions: h.render(transactions),
			Pagination: dto.PaginationInfo{
				Limit: len(transactions),
				Total: int64(len(transactions)),
			},
		})
	}

	filters := models.TransactionFilters{
		Offset: query.Offset,
		Limit:  pageLimit(query.Limit),
	}
	if query.Month != "" {
		ref, err := time.Parse("2006-01", query.Month)
		if err != nil {
			return SendError(c, errors.DashboardInvalidPeriod)
		}
		start, end := models.PeriodBounds(ref)
		filters.StartDate = &start
		filters.EndDate = &end
	}

	transactions, total, err := h.transactionService.ListPage(ctx, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: h.render(transactions),
		Pagination: dto.PaginationInfo{
			Offset:  filters.Offset,
			Limit:   filters.Limit,
			Total:   total,
			HasMore: int64(filters.Offset+len(transactions)) < total,
		},
	})
}

// CreateTransaction records a new income or expense
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Signed amount, description and YYYY-MM-DD date"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation error"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_003 - Transaction validation failed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	txn, err := req.ToModel()
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
	}

	created, err := h.transactionService.Create(c.Request().Context(), txn)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidTransaction) {
			return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(*created, h.classifier.Classify(created.Description)))
}

// GetTransaction returns one transaction
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_004 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidID)
	}

	txn, err := h.transactionService.Get(c.Request().Context(), id)
	if err != nil {
		if stderrors.Is(err, services.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(*txn, h.classifier.Classify(txn.Description)))
}

// UpdateTransaction overwrites amount, description and date
// @Summary Update transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.TransactionRequest true "Signed amount, description and YYYY-MM-DD date"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Validation error"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidID)
	}

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	changes, err := req.ToModel()
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
	}

	updated, err := h.transactionService.Update(c.Request().Context(), id, changes)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrTransactionNotFound):
			return SendError(c, errors.TransactionNotFound)
		case stderrors.Is(err, services.ErrInvalidTransaction):
			return SendError(c, errors.TransactionValidationFailed, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(*updated, h.classifier.Classify(updated.Description)))
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Tags Transactions
// @Param id path string true "Transaction ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return SendError(c, errors.TransactionInvalidID)
	}

	if err := h.transactionService.Delete(c.Request().Context(), id); err != nil {
		if stderrors.Is(err, services.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// StreamTransactions pushes the full snapshot as a Server-Sent Event on connect
// and after every change, until the client goes away
// @Summary Stream transactions
// @Tags Transactions
// @Produce text/event-stream
// @Success 200 {string} string "event: transactionsData"
// @Router /transactions/stream [get]
func (h *TransactionHandler) StreamTransactions(c echo.Context) error {
	ctx := c.Request().Context()

	updates, unsubscribe := h.feed.Subscribe()
	defer func() {
		unsubscribe()
		h.metrics.RecordGauge("transaction_feed_subscribers", float64(h.feed.SubscriberCount()), nil)
	}()
	h.metrics.RecordGauge("transaction_feed_subscribers", float64(h.feed.SubscriberCount()), nil)

	snapshot, err := h.transactionService.List(ctx)
	if err != nil {
		return SendSystemError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	if err := h.writeSnapshot(res, snapshot); err != nil {
		return nil
	}

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, open := <-updates:
			if !open {
				return nil
			}
			if err := h.writeSnapshot(res, snapshot); err != nil {
				slog.Debug("transaction stream closed", "error", err)
				return nil
			}
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func (h *TransactionHandler) writeSnapshot(res *echo.Response, snapshot []models.Transaction) error {
	payload, err := json.Marshal(h.render(snapshot))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", StreamEventName, payload); err != nil {
		return err
	}
	res.Flush()
	return nil
}

func (h *TransactionHandler) render(transactions []models.Transaction) []dto.TransactionResponse {
	classified := h.classifier.BatchClassify(transactions)
	responses := make([]dto.TransactionResponse, 0, len(classified))
	for _, ct := range classified {
		responses = append(responses, dto.NewTransactionResponse(ct.Transaction, ct.Category))
	}
	return responses
}
