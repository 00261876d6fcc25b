package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "task-management.com/task-management/internal/errors"
	"task-management.com/task-management/internal/services"
	model "task-management.com/task-management/pkg/models"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

// ListTasks serves GET /api/tasks, optionally filtered with ?status=X.
func (h *Handler) ListTasks(c echo.Context) error {
	raw := c.QueryParam("status")
	if raw == "" {
		tasks, err := h.taskService.GetAllTasks(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, tasks)
	}

	status, ok := model.ParseTaskStatus(raw)
	if !ok {
		return apperrors.NewTypeMismatch("status", raw, "TaskStatus")
	}

	tasks, err := h.taskService.GetTasksByStatus(c.Request().Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTaskByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	req, err := bindTaskRequest(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req.toTask())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	req, err := bindTaskRequest(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req.toTask())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) TaskCount(c echo.Context) error {
	count, err := h.taskService.GetTaskCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TaskCountResponse{Count: count})
}

func (h *Handler) DeleteAllTasks(c echo.Context) error {
	if err := h.taskService.DeleteAllTasks(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func taskID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewTypeMismatch("id", raw, "int")
	}
	return id, nil
}

func bindTaskRequest(c echo.Context) (*TaskRequest, error) {
	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *TaskRequest) toTask() *model.Task {
	return &model.Task{
		Title:       r.Title,
		Description: r.Description,
		Status:      model.TaskStatus(r.Status),
	}
}
