package errors

import (
	"errors"
	"net/http"
)

// NewInvalidArgument reports a business-rule violation: missing payloads,
// non-positive ids, field length overruns.
func NewInvalidArgument(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Reason:     "Invalid Request",
	}
}

func IsInvalidArgument(err error) bool {
	var appErr *Exception
	return errors.As(err, &appErr) &&
		appErr.StatusCode == http.StatusBadRequest &&
		appErr.Reason == "Invalid Request"
}
