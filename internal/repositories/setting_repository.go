package repositories

import (
	"context"
	"errors"
	"fmt"

	"budget-dashboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSettingNotFound = errors.New("setting not found")
)

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) SettingRepositoryInterface {
	return &settingRepository{
		db: db,
	}
}

// Get retrieves the setting stored under key
func (r *settingRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	if key == "" {
		return nil, ErrSettingNotFound
	}

	var setting models.Setting
	if err := r.db.WithContext(ctx).Where(&models.Setting{Key: key}).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return &setting, nil
}

// Put inserts or overwrites the value stored under key
func (r *settingRepository) Put(ctx context.Context, key, value string) error {
	setting := &models.Setting{Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		return fmt.Errorf("failed to save setting %q: %w", key, err)
	}
	return nil
}

// Delete removes the setting stored under key. Missing keys are not an error.
func (r *settingRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return models.ErrSettingKeyRequired
	}
	if err := r.db.WithContext(ctx).Where(&models.Setting{Key: key}).Delete(&models.Setting{}).Error; err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}
	return nil
}
