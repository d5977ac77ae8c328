package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"budget-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRequest is the body of create and update calls. Amount is signed:
// negative for expenses, positive for income.
type TransactionRequest struct {
	Amount      json.Number `json:"amount" validate:"required,signed_amount"`
	Description string      `json:"description" validate:"required,max=255"`
	Date        string      `json:"date" validate:"required,transaction_date"`
}

// ToModel converts a validated request into a transaction
func (r TransactionRequest) ToModel() (*models.Transaction, error) {
	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", r.Amount, err)
	}

	date, err := models.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	return &models.Transaction{
		Amount:      amount,
		Description: r.Description,
		Date:        date,
	}, nil
}

// ListTransactionsQuery holds the optional filters of the list endpoint
type ListTransactionsQuery struct {
	Month  string `query:"month" validate:"omitempty,report_period"`
	Offset int    `query:"offset" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0,lte=500"`
}

// TransactionResponse is a transaction as the dashboard client sees it
type TransactionResponse struct {
	ID          uuid.UUID       `json:"_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewTransactionResponse renders a transaction with the label the classifier gave it
func NewTransactionResponse(txn models.Transaction, category string) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		Amount:      txn.Amount,
		Description: txn.Description,
		Date:        txn.Date.Format(models.DateLayout),
		Category:    category,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"hasMore"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}
