package errors

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) allCodes() []ErrorCode {
	return []ErrorCode{
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate,
		TransactionNotFound, TransactionInvalidAmount, TransactionValidationFailed, TransactionInvalidID,
		BudgetInvalidCategory, BudgetDuplicate,
		DashboardInvalidPeriod, DashboardStreamClosed,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable,
		SystemConfigurationError, SystemUnexpectedError, SystemRateLimitExceeded,
		SystemRouteNotFound,
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{"validation general", ValidationGeneral, "Validation failed"},
		{"invalid date", ValidationInvalidDate, "Invalid date, expected YYYY-MM-DD"},
		{"transaction not found", TransactionNotFound, "Transaction not found"},
		{"unknown budget category", BudgetInvalidCategory, "Invalid budget category"},
		{"invalid period", DashboardInvalidPeriod, "Invalid reporting period, expected YYYY-MM"},
		{"system internal", SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
	s.Equal("An error occurred", GetErrorMessage(""))
}

func (s *CodesTestSuite) TestEveryCodeHasMessage() {
	for _, code := range s.allCodes() {
		s.True(IsValidErrorCode(code), "code %s has no message", code)
		s.NotEqual("An error occurred", GetErrorMessage(code))
	}
}

func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCodes() {
	for _, code := range []ErrorCode{"", "AUTH_001", "VALIDATION_999", "validation_001"} {
		s.False(IsValidErrorCode(code), "code %q", code)
	}
}

func (s *CodesTestSuite) TestCodesAreUnique() {
	seen := make(map[ErrorCode]bool)
	for _, code := range s.allCodes() {
		s.False(seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func (s *CodesTestSuite) TestCodePrefixes() {
	testCases := []struct {
		prefix string
		codes  []ErrorCode
	}{
		{"VALIDATION_", []ErrorCode{ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat, ValidationOutOfRange, ValidationInvalidDate}},
		{"TRANSACTION_", []ErrorCode{TransactionNotFound, TransactionInvalidAmount, TransactionValidationFailed, TransactionInvalidID}},
		{"BUDGET_", []ErrorCode{BudgetInvalidCategory, BudgetDuplicate}},
		{"DASHBOARD_", []ErrorCode{DashboardInvalidPeriod, DashboardStreamClosed}},
		{"SYSTEM_", []ErrorCode{SystemInternalError, SystemDatabaseError, SystemServiceUnavailable, SystemConfigurationError, SystemUnexpectedError, SystemRateLimitExceeded, SystemRouteNotFound}},
	}

	for _, tc := range testCases {
		s.Run(tc.prefix, func() {
			for _, code := range tc.codes {
				s.True(strings.HasPrefix(string(code), tc.prefix), "code %s", code)
			}
		})
	}
}

func (s *CodesTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidDate, http.StatusBadRequest},
		{TransactionInvalidID, http.StatusBadRequest},
		{DashboardInvalidPeriod, http.StatusBadRequest},
		{TransactionNotFound, http.StatusNotFound},
		{SystemRouteNotFound, http.StatusNotFound},
		{TransactionValidationFailed, http.StatusUnprocessableEntity},
		{BudgetInvalidCategory, http.StatusUnprocessableEntity},
		{BudgetDuplicate, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{DashboardStreamClosed, http.StatusServiceUnavailable},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}
