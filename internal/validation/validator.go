package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"budget-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxAmount bounds a single transaction so it fits decimal(15,2)
var maxAmount = decimal.NewFromInt(10_000_000_000_000)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("signed_amount", validateSignedAmount)
	_ = v.RegisterValidation("transaction_date", validateTransactionDate)
	_ = v.RegisterValidation("budget_category", validateBudgetCategory)
	_ = v.RegisterValidation("report_period", validateReportPeriod)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = fld.Tag.Get("query")
		}
		return name
	})

	return &Validator{validate: v}
}

// validateSignedAmount accepts any finite number of either sign, zero included,
// with at most 2 decimal places
func validateSignedAmount(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return false
	}

	return amount.Equal(amount.Round(2))
}

// validateTransactionDate checks for a YYYY-MM-DD calendar date
func validateTransactionDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

// validateBudgetCategory requires a non-blank label. Income is never budgeted.
func validateBudgetCategory(fl validator.FieldLevel) bool {
	label := strings.TrimSpace(fl.Field().String())
	if label == "" || len(label) > 100 {
		return false
	}
	return !strings.EqualFold(label, models.CategoryIncome)
}

// validateReportPeriod checks for a YYYY-MM month
func validateReportPeriod(fl validator.FieldLevel) bool {
	return periodPattern.MatchString(fl.Field().String())
}
