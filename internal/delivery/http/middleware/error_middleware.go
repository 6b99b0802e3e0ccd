package middleware

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/http/response"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// notFoundSentinels maps the repository not-found sentinels to their
// business error codes.
var notFoundSentinels = map[error]string{
	repository.ErrAddressNotFound:  "ADDRESS_NOT_FOUND",
	repository.ErrCustomerNotFound: "CUSTOMER_NOT_FOUND",
	repository.ErrProductNotFound:  "PRODUCT_NOT_FOUND",
	repository.ErrPropertyNotFound: "PROPERTY_NOT_FOUND",
	repository.ErrCartNotFound:     "CART_NOT_FOUND",
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Map repository not-found sentinels to 404 responses
	for sentinel, code := range notFoundSentinels {
		if errors.Is(err, sentinel) {
			_ = response.NotFound(c, code, sentinel.Error())

			return
		}
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	// Default to internal error, log and return a generic response
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error")
}
