package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     bool
		errMsg      string
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				Amount:      decimal.NewFromFloat(-42.50),
				Description: "Grocery run",
				Date:        date,
			},
			wantErr: false,
		},
		{
			name: "valid income",
			transaction: Transaction{
				Amount:      decimal.NewFromInt(3000),
				Description: "Monthly Salary",
				Date:        date,
			},
			wantErr: false,
		},
		{
			name: "zero amount is allowed",
			transaction: Transaction{
				Amount:      decimal.Zero,
				Description: "Adjustment",
				Date:        date,
			},
			wantErr: false,
		},
		{
			name: "missing description",
			transaction: Transaction{
				Amount: decimal.NewFromInt(-10),
				Date:   date,
			},
			wantErr: true,
			errMsg:  "transaction description is required",
		},
		{
			name: "whitespace description",
			transaction: Transaction{
				Amount:      decimal.NewFromInt(-10),
				Description: "   ",
				Date:        date,
			},
			wantErr: true,
			errMsg:  "transaction description is required",
		},
		{
			name: "description too long",
			transaction: Transaction{
				Amount:      decimal.NewFromInt(-10),
				Description: string(make([]byte, 256)),
				Date:        date,
			},
			wantErr: true,
		},
		{
			name: "missing date",
			transaction: Transaction{
				Amount:      decimal.NewFromInt(-10),
				Description: "Bus ticket",
			},
			wantErr: true,
			errMsg:  "transaction date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTransaction_SignMethods(t *testing.T) {
	tests := []struct {
		amount  decimal.Decimal
		expense bool
		income  bool
	}{
		{decimal.NewFromFloat(-0.01), true, false},
		{decimal.NewFromInt(-1200), true, false},
		{decimal.Zero, false, false},
		{decimal.NewFromFloat(0.01), false, true},
	}

	for _, tt := range tests {
		txn := Transaction{Amount: tt.amount}
		assert.Equal(t, tt.expense, txn.IsExpense(), tt.amount.String())
		assert.Equal(t, tt.income, txn.IsIncome(), tt.amount.String())
	}
}

func TestTransaction_InPeriod(t *testing.T) {
	ref := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"first day of month", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"last day of month", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), true},
		{"previous month", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"next month", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), false},
		{"same month previous year", time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := Transaction{Date: tt.date}
			assert.Equal(t, tt.expected, txn.InPeriod(ref))
		})
	}

	t.Run("reference in another location", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		localRef := time.Date(2024, 3, 1, 8, 0, 0, 0, loc)
		txn := Transaction{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
		assert.True(t, txn.InPeriod(localRef))
	})
}

func TestTransaction_BeforeCreate(t *testing.T) {
	txn := Transaction{
		Amount:      decimal.NewFromFloat(-15.75),
		Description: "Cafe latte",
		Date:        time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC),
	}

	err := txn.BeforeCreate(nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.NotZero(t, txn.CreatedAt)
	assert.NotZero(t, txn.UpdatedAt)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), txn.Date)
}

func TestTransaction_BeforeCreate_KeepsExistingID(t *testing.T) {
	id := uuid.New()
	txn := Transaction{
		ID:          id,
		Amount:      decimal.NewFromInt(-5),
		Description: "Snack",
		Date:        time.Now(),
	}

	require.NoError(t, txn.BeforeCreate(nil))
	assert.Equal(t, id, txn.ID)
}

func TestTransaction_BeforeUpdate(t *testing.T) {
	txn := Transaction{
		Amount:      decimal.NewFromInt(-20),
		Description: "Taxi",
		Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Now().Add(-1 * time.Hour),
	}

	originalUpdatedAt := txn.UpdatedAt

	err := txn.BeforeUpdate(nil)
	require.NoError(t, err)

	assert.True(t, txn.UpdatedAt.After(originalUpdatedAt))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-03-15T23:10:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestSampleTransactionDescriptions(t *testing.T) {
	assert.NotEmpty(t, SampleTransactionDescriptions)
	assert.Greater(t, len(SampleTransactionDescriptions), 10)

	for _, desc := range SampleTransactionDescriptions {
		assert.NotEmpty(t, desc)
	}
}
