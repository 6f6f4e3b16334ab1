package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"expenseease/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into the standard error envelope
// instead of dropping the connection.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.Error("panic recovered",
					slog.String("trace_id", traceID),
					slog.Any("panic", r),
					slog.String("method", c.Request().Method),
					slog.String("path", c.Request().URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				resp := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, resp); err != nil {
					slog.Error("failed to write panic response",
						slog.String("trace_id", traceID),
						slog.Any("error", err),
					)
				}
			}()

			return next(c)
		}
	}
}
