package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// BudgetSettingKey is the settings key the budget configuration is stored under
const BudgetSettingKey = "categoryBudgets"

var ErrSettingKeyRequired = errors.New("setting key is required")

// Setting is a key-value record holding a JSON document
type Setting struct {
	Key       string    `gorm:"type:varchar(100);primary_key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeSave hook for Setting
func (s *Setting) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(s.Key) == "" {
		return ErrSettingKeyRequired
	}
	s.UpdatedAt = time.Now()
	return nil
}

// TableName returns the table name for Setting
func (s *Setting) TableName() string {
	return "settings"
}
