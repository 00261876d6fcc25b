package model

import (
	"time"
)

// Task is the domain entity managed by the service. ID is zero until the
// repository assigns one on first save; both timestamps are owned by the
// repository as well.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Persisted reports whether the task has been through a save, i.e. has an
// assigned id.
func (t *Task) Persisted() bool {
	return t.ID > 0
}
