package services

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	apperrors "task-management.com/task-management/internal/errors"
	repository "task-management.com/task-management/internal/repositories"
	model "task-management.com/task-management/pkg/models"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
)

// TaskService enforces the business rules around tasks and orchestrates the
// repository. All typed failures surfaced to the HTTP layer originate here.
type TaskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.FindAll(ctx)
}

func (s *TaskService) GetTaskByID(ctx context.Context, id int64) (*model.Task, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.NewTaskNotFound(id)
	}
	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task == nil {
		return nil, apperrors.NewInvalidArgument("task is required")
	}
	if err := validateTaskFields(task); err != nil {
		return nil, err
	}

	// Always treated as new, whatever the client sent.
	task.ID = 0

	created, err := s.repo.Save(ctx, task)
	if err != nil {
		return nil, err
	}

	slog.Info("created task", "id", created.ID, "title", created.Title)
	return created, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, update *model.Task) (*model.Task, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if update == nil {
		return nil, apperrors.NewInvalidArgument("task is required")
	}
	if err := validateTaskFields(update); err != nil {
		return nil, err
	}

	existing, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mergeTaskFields(existing, update)

	updated, err := s.repo.Save(ctx, existing)
	if err != nil {
		return nil, err
	}

	slog.Info("updated task", "id", updated.ID, "title", updated.Title)
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewTaskNotFound(id)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	slog.Info("deleted task", "id", id)
	return nil
}

func (s *TaskService) GetTasksByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error) {
	if status == "" {
		return nil, apperrors.NewInvalidArgument("status is required")
	}
	return s.repo.FindByStatus(ctx, status)
}

func (s *TaskService) GetTaskCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *TaskService) DeleteAllTasks(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}

	slog.Info("deleted all tasks", "previous_count", count)
	return nil
}

func validateID(id int64) error {
	if id <= 0 {
		return apperrors.NewInvalidArgument("task id must be positive")
	}
	return nil
}

// validateTaskFields applies the field rules shared by create and update.
// A missing status is defaulted to TODO in place rather than rejected.
func validateTaskFields(task *model.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return apperrors.NewInvalidArgument("title is required")
	}
	if utf8.RuneCountInString(task.Title) > maxTitleLength {
		return apperrors.NewInvalidArgument("title must not exceed 100 characters")
	}
	if task.Description != nil && utf8.RuneCountInString(*task.Description) > maxDescriptionLength {
		return apperrors.NewInvalidArgument("description must not exceed 500 characters")
	}
	if task.Status == "" {
		task.Status = model.StatusTodo
	} else if !task.Status.Valid() {
		return apperrors.NewInvalidArgument("invalid task status")
	}
	return nil
}

// mergeTaskFields applies an update payload onto the stored task: title only
// when non-blank, description unconditionally (clearing is allowed), status
// only when set. Status transitions are unconstrained.
func mergeTaskFields(existing, update *model.Task) {
	if strings.TrimSpace(update.Title) != "" {
		existing.Title = update.Title
	}
	existing.Description = update.Description
	if update.Status != "" {
		existing.Status = update.Status
	}
}
