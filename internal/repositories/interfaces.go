package repositories

import (
	"context"

	"budget-dashboard/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns the full snapshot, newest transaction date first
	List(ctx context.Context) ([]models.Transaction, error)
	GetWithFilters(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	Count(ctx context.Context) (int64, error)
}

// SettingRepositoryInterface defines a key-value store for JSON documents
type SettingRepositoryInterface interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
