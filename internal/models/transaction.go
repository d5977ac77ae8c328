package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DateLayout is the wire format of a transaction's calendar date
const DateLayout = "2006-01-02"

var (
	ErrDescriptionRequired = errors.New("transaction description is required")
	ErrDateRequired        = errors.New("transaction date is required")
	ErrDescriptionTooLong  = errors.New("transaction description too long (max 255 characters)")
)

// Transaction is a single money movement. Positive amounts are income,
// negative amounts are expenses and zero belongs to neither bucket.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updatedAt"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	t.Date = TruncateToDate(t.Date)

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	t.Date = TruncateToDate(t.Date)
	return t.Validate()
}

// Validate validates the fields needed to categorize and aggregate the transaction
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionRequired
	}

	if len(t.Description) > 255 {
		return ErrDescriptionTooLong
	}

	if t.Date.IsZero() {
		return ErrDateRequired
	}

	return nil
}

// IsExpense returns true for strictly negative amounts
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome returns true for strictly positive amounts
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// InPeriod reports whether the transaction's calendar date falls in the same
// month and year as ref. ref is read in its own location.
func (t *Transaction) InPeriod(ref time.Time) bool {
	y, m, _ := t.Date.Date()
	return y == ref.Year() && m == ref.Month()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// TruncateToDate drops the clock part of a timestamp, keeping its calendar date
func TruncateToDate(ts time.Time) time.Time {
	if ts.IsZero() {
		return ts
	}
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date, also accepting full RFC3339 timestamps
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrDateRequired
	}
	if d, err := time.Parse(DateLayout, value); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return TruncateToDate(ts), nil
}

// Common transaction descriptions for sample data
var SampleTransactionDescriptions = []string{
	"Monthly Salary",
	"Freelance project payment",
	"Whole Foods grocery",
	"Uber ride home",
	"Amazon order",
	"Movie night tickets",
	"Pharmacy prescription",
	"Electricity bill",
	"Apartment rent",
	"Coffee at the corner cafe",
	"Concert tickets",
	"Internet subscription",
	"Dentist appointment",
	"Train pass",
	"Birthday present",
}
