package errors

import (
	"net/http"
)

// ValidationException is raised when the inbound request body fails its
// structural field constraints. FieldErrors maps field name to message and
// is included verbatim in the response body.
type ValidationException struct {
	Exception
	FieldErrors map[string]string
}

func NewValidation(fieldErrors map[string]string) *ValidationException {
	return &ValidationException{
		Exception: Exception{
			Message:    "Validation failed",
			StatusCode: http.StatusBadRequest,
			Reason:     "Validation Error",
		},
		FieldErrors: fieldErrors,
	}
}
