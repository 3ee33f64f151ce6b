package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/IanAndy202/Hotel-App/app/usecases"
)

// errorResponse answers with the status and message of a UseCaseError.
// Any other error is logged and becomes a 500 with the fallback message.
func errorResponse(c echo.Context, err error, fallback string) error {
	var ucErr *usecases.UseCaseError
	if errors.As(err, &ucErr) {
		return c.String(ucErr.Code, ucErr.Message)
	}
	slog.ErrorContext(c.Request().Context(), fallback, "method", c.Request().Method, "path", c.Path(), "error", err)
	return c.String(http.StatusInternalServerError, fallback)
}
