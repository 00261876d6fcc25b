package http

// TaskRequest is the inbound body for create and update. Status is bound as
// a plain string so that unknown values are reported by the validator
// instead of failing deep inside JSON decoding.
type TaskRequest struct {
	Title       string  `json:"title"       validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Status      string  `json:"status"      validate:"omitempty,oneof=TODO IN_PROGRESS COMPLETED"`
}

// TaskCountResponse is the body of GET /api/tasks/count.
type TaskCountResponse struct {
	Count int64 `json:"count"`
}
