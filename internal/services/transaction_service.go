package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"budget-dashboard/internal/models"
	"budget-dashboard/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidTransaction  = errors.New("invalid transaction")
	ErrTransactionNil      = errors.New("transaction cannot be nil")
)

type transactionService struct {
	repo    repositories.TransactionRepositoryInterface
	feed    TransactionFeedInterface
	metrics MetricsRecorderInterface
}

// NewTransactionService creates a new TransactionServiceInterface instance
func NewTransactionService(
	repo repositories.TransactionRepositoryInterface,
	feed TransactionFeedInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		repo:    repo,
		feed:    feed,
		metrics: metrics,
	}
}

// Create stores a new transaction and pushes the new snapshot to subscribers
func (s *transactionService) Create(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	if txn == nil {
		return nil, ErrTransactionNil
	}

	txn.Date = models.TruncateToDate(txn.Date)
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	slog.Info("transaction created", "transaction_id", txn.ID, "amount", txn.Amount.String())
	s.afterMutation(ctx, "create")

	return txn, nil
}

// Import validates and stores a batch in one write, then publishes a single snapshot.
// Nothing is stored when any transaction is invalid.
func (s *transactionService) Import(ctx context.Context, transactions []models.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	for i := range transactions {
		transactions[i].Date = models.TruncateToDate(transactions[i].Date)
		if err := transactions[i].Validate(); err != nil {
			return 0, fmt.Errorf("%w: item %d: %w", ErrInvalidTransaction, i, err)
		}
	}

	if err := s.repo.CreateBatch(ctx, transactions); err != nil {
		return 0, fmt.Errorf("failed to import transactions: %w", err)
	}

	slog.Info("transactions imported", "count", len(transactions))
	s.afterMutation(ctx, "import")

	return len(transactions), nil
}

// Update overwrites amount, description and date of an existing transaction
func (s *transactionService) Update(ctx context.Context, id uuid.UUID, changes *models.Transaction) (*models.Transaction, error) {
	if changes == nil {
		return nil, ErrTransactionNil
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Amount = changes.Amount
	existing.Description = changes.Description
	existing.Date = models.TruncateToDate(changes.Date)

	if err := existing.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	slog.Info("transaction updated", "transaction_id", id)
	s.afterMutation(ctx, "update")

	return existing, nil
}

// Delete removes a transaction
func (s *transactionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	slog.Info("transaction deleted", "transaction_id", id)
	s.afterMutation(ctx, "delete")

	return nil
}

func (s *transactionService) Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	txn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// List returns the full snapshot the dashboard is computed from
func (s *transactionService) List(ctx context.Context) ([]models.Transaction, error) {
	transactions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (s *transactionService) ListPage(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	transactions, total, err := s.repo.GetWithFilters(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}

// afterMutation counts the mutation and publishes the fresh snapshot.
// A failed snapshot read only skips the push; the mutation itself succeeded.
func (s *transactionService) afterMutation(ctx context.Context, operation string) {
	s.metrics.IncrementCounter("transactions_mutations_total", map[string]string{"operation": operation})

	snapshot, err := s.repo.List(ctx)
	if err != nil {
		slog.Warn("failed to load snapshot for subscribers", "operation", operation, "error", err)
		return
	}
	s.feed.Publish(snapshot)
}
