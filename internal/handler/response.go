package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps validation failures to 400 and everything else to
// 500. The error text is always returned to the caller.
func writeServiceError(c echo.Context, err error) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return Error(c, http.StatusBadRequest, validationErr.Error())
	}

	logger.Error("request failed", "module", "handler", "action", "request", "resource", c.Path(), "result", "failed", "upstream", errors.Is(err, service.ErrUpstream), "error", err)
	return Error(c, http.StatusInternalServerError, err.Error())
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
