package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "task-management.com/task-management/internal/errors"
)

// ErrorResponse is the structured body every failure is reduced to.
// FieldErrors is only present for request-body validation failures.
type ErrorResponse struct {
	Message     string            `json:"message"`
	Status      int               `json:"status"`
	Error       string            `json:"error"`
	Timestamp   time.Time         `json:"timestamp"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// ErrorHandler is the single terminal translator from typed failures to
// HTTP responses. Handlers return errors upward; nothing below this layer
// writes an error body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	resp := translate(err)

	if writeErr := c.JSON(resp.Status, resp); writeErr != nil {
		slog.Error("failed to write error response", "error", writeErr)
	}
}

func translate(err error) ErrorResponse {
	now := time.Now().UTC()

	var valErr *apperrors.ValidationException
	if errors.As(err, &valErr) {
		return ErrorResponse{
			Message:     valErr.Message,
			Status:      valErr.StatusCode,
			Error:       valErr.Reason,
			Timestamp:   now,
			FieldErrors: valErr.FieldErrors,
		}
	}

	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return ErrorResponse{
			Message:   appErr.Message,
			Status:    appErr.StatusCode,
			Error:     appErr.Reason,
			Timestamp: now,
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return ErrorResponse{
			Message:   fmt.Sprintf("%v", httpErr.Message),
			Status:    httpErr.Code,
			Error:     http.StatusText(httpErr.Code),
			Timestamp: now,
		}
	}

	// Details stay in the log, never in the response.
	slog.Error("unexpected error", "error", err)
	return ErrorResponse{
		Message:   "An unexpected error occurred",
		Status:    http.StatusInternalServerError,
		Error:     "Internal Server Error",
		Timestamp: now,
	}
}
