// Package middleware holds echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"net/http"

	"evacuation/internal/delivery/api/response"
	deliverycontext "evacuation/internal/delivery/context"
	domainerrors "evacuation/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders errors that handlers returned instead of writing a response.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			m.log(c, err)
		}
		_ = response.FromAppError(c, appErr)

		return
	}

	// Routing and binding failures from echo itself.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "Żądanie nie mogło zostać obsłużone"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.log(c, err)
	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Wewnętrzny błąd serwera, spróbuj ponownie później", nil)
}

func (m *ErrorMiddleware) log(c echo.Context, err error) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
