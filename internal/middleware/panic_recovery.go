package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"budget-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var panicsRecoveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_panics_recovered_total",
		Help: "Total number of handler panics turned into 500 responses",
	},
	[]string{"endpoint"},
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response. A stream
// that already started writing is only logged and then dropped.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := traceIDOrUnknown(c)
				committed := c.Response().Committed
				panicsRecoveredTotal.WithLabelValues(c.Path()).Inc()

				slog.Error("panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"committed", committed,
					"stack_trace", string(debug.Stack()),
				)

				if committed {
					err = nil
					return
				}

				response, _ := errors.WrapSystemError(fmt.Errorf("panic: %v", r), traceID)
				err = c.JSON(http.StatusInternalServerError, response)
			}()

			return next(c)
		}
	}
}
