package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption customizes a response built by NewErrorResponse
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the response details
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

var httpStatusByCode = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	ValidationInvalidDate:   http.StatusBadRequest,

	TransactionInvalidAmount:    http.StatusBadRequest,
	TransactionInvalidID:        http.StatusBadRequest,
	TransactionNotFound:         http.StatusNotFound,
	TransactionValidationFailed: http.StatusUnprocessableEntity,

	BudgetInvalidCategory: http.StatusUnprocessableEntity,
	BudgetDuplicate:       http.StatusUnprocessableEntity,

	DashboardInvalidPeriod: http.StatusBadRequest,
	DashboardStreamClosed:  http.StatusServiceUnavailable,

	SystemRouteNotFound:      http.StatusNotFound,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

func newResponse(code ErrorCode, traceID string, details []string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			Details: details,
			TraceID: traceID,
		},
	}
}

// NewErrorResponse builds the response for code with its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := newResponse(code, traceID, []string{})
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError reports one "field: message" detail per failed field, sorted by field path
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, len(fields))
	for i, field := range fields {
		details[i] = field + ": " + fieldErrors[field]
	}

	return newResponse(ValidationGeneral, traceID, details)
}

// WrapSystemError hides err behind the generic internal error response.
// err is handed back unchanged for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return newResponse(SystemInternalError, traceID, []string{}), err
}

// GetHTTPStatus maps an error code to its HTTP status. Unknown codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
