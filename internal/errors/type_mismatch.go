package errors

import (
	"fmt"
	"net/http"
)

// NewTypeMismatch reports a path or query parameter that could not be
// converted to its expected type, e.g. a non-numeric id or an unknown
// status value.
func NewTypeMismatch(param, value, expected string) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("Invalid value '%s' for parameter '%s'. Expected type: %s", value, param, expected),
		StatusCode: http.StatusBadRequest,
		Reason:     "Type Mismatch",
	}
}
