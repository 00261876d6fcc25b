package errors

import (
	"errors"
	"net/http"
)

// Exception is a typed failure raised by the service and repository layers.
// Reason is the short label emitted in the error response body; handlers
// never inspect it, only the top-level error translator does.
type Exception struct {
	Message    string
	StatusCode int
	Reason     string
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
