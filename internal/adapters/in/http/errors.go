package http

import (
	"errors"
	"log/slog"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, commands.ErrVehicleNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Unclassified errors are logged and
// hidden from the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			slog.String("method", ctx.Request().Method),
			slog.String("route", ctx.Path()),
			slog.Any("error", err),
		)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

func badRequestBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
