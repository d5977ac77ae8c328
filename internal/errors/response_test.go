package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(TransactionNotFound, s.traceID)

	s.Equal("TRANSACTION_001", response.Error.Code)
	s.Equal("Transaction not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		BudgetInvalidCategory,
		s.traceID,
		WithMessage("Income cannot be budgeted"),
		WithDetails("category: Income"),
	)

	s.Equal("BUDGET_001", response.Error.Code)
	s.Equal("Income cannot be budgeted", response.Error.Message)
	s.Equal([]string{"category: Income"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWithOptions_LastWins() {
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithDetails("detail1", "detail2"),
		WithDetails("detail3"),
		WithMessage("first"),
		WithMessage("second"),
	)

	s.Equal([]string{"detail3"}, response.Error.Details)
	s.Equal("second", response.Error.Message)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedByField() {
	response := NewValidationError(map[string]string{
		"description": "is required",
		"amount":      "must be a number",
		"date":        "must be YYYY-MM-DD",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{
		"amount: must be a number",
		"date: must be YYYY-MM-DD",
		"description: is required",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_Empty() {
	response := NewValidationError(map[string]string{}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternals() {
	internalErr := errors.New("SQL error: no such table: transactions at /var/lib/budget.db")

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "SQL")
	s.NotContains(response.Error.Message, "/var/lib")
	s.Empty(response.Error.Details)
	s.Equal(internalErr, originalErr)
}

func (s *ResponseTestSuite) TestJSONShape() {
	response := NewErrorResponse(ValidationInvalidDate, s.traceID, WithDetails("date: 2024-13-01"))

	jsonBytes, err := json.Marshal(response)
	s.Require().NoError(err)

	var jsonMap map[string]interface{}
	s.Require().NoError(json.Unmarshal(jsonBytes, &jsonMap))

	errorObj := jsonMap["error"].(map[string]interface{})
	s.Equal("VALIDATION_005", errorObj["code"])
	s.Equal(s.traceID, errorObj["trace_id"])
	s.IsType([]interface{}{}, errorObj["details"])
}

func (s *ResponseTestSuite) TestJSONShape_EmptyDetailsOmitted() {
	jsonBytes, err := json.Marshal(NewErrorResponse(TransactionNotFound, s.traceID))
	s.Require().NoError(err)

	var jsonMap map[string]interface{}
	s.Require().NoError(json.Unmarshal(jsonBytes, &jsonMap))

	_, hasDetails := jsonMap["error"].(map[string]interface{})["details"]
	s.False(hasDetails)
}

func (s *ResponseTestSuite) TestGetHTTPStatus_FromResponse() {
	s.Equal(http.StatusNotFound, NewErrorResponse(TransactionNotFound, s.traceID).GetHTTPStatus())
	s.Equal(http.StatusUnprocessableEntity, NewErrorResponse(BudgetDuplicate, s.traceID).GetHTTPStatus())
	s.Equal(http.StatusBadRequest, NewValidationError(nil, s.traceID).GetHTTPStatus())

	response, _ := WrapSystemError(errors.New("boom"), s.traceID)
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestString() {
	str := NewErrorResponse(TransactionNotFound, s.traceID).String()

	s.Contains(str, "TRANSACTION_001")
	s.Contains(str, "Transaction not found")
	s.Contains(str, s.traceID)
}
