package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NewTaskNotFound reports a lookup, update or delete against an id that is
// not in the store.
func NewTaskNotFound(id int64) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("Task not found with id: %d", id),
		StatusCode: http.StatusNotFound,
		Reason:     "Task Not Found",
	}
}

func IsNotFound(err error) bool {
	var appErr *Exception
	return errors.As(err, &appErr) && appErr.StatusCode == http.StatusNotFound
}
