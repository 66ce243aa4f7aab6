package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the domain error kinds onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders every error as an Error body. Unclassified errors are
// logged and reported without their details.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		body := Error{Code: statusFor(err), Message: err.Error()}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			body = Error{Code: httpErr.Code, Message: fmt.Sprint(httpErr.Message)}
		}

		if body.Code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed",
				"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
			body.Message = http.StatusText(body.Code)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(body.Code)
		} else {
			writeErr = ctx.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
