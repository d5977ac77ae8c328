package handlers

import (
	"log/slog"
	"net/http"

	"budget-dashboard/internal/errors"
	"budget-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
)

// Handlers report failures only through the helpers below: SendError for
// 4xx codes, SendValidationError for validator output and SendSystemError
// for anything internal. Internal error text never reaches the client.

// TraceIDContextKey matches the key the RequestID middleware stores the trace ID under
const TraceIDContextKey = "trace_id"

// ErrorResponse lets handler tests decode error bodies without importing internal/errors
type ErrorResponse = errors.ErrorResponse

// SendError writes the response for code, stamped with the request's trace ID
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, traceID(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendValidationError reports validator failures field by field. Anything that
// is not a validator error is reported as a general validation failure.
func SendValidationError(c echo.Context, err error) error {
	fieldErrors := validation.FieldErrors(err)
	if fieldErrors == nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	response := errors.NewValidationError(fieldErrors, traceID(c))
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError logs err and answers with the generic SYSTEM_001 body
func SendSystemError(c echo.Context, err error) error {
	id := traceID(c)
	response, internalErr := errors.WrapSystemError(err, id)
	slog.Error("request failed",
		"trace_id", id,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, response)
}

func traceID(c echo.Context) string {
	id, _ := c.Get(TraceIDContextKey).(string)
	return id
}
