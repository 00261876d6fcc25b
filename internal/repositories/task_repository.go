package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	apperrors "task-management.com/task-management/internal/errors"
	model "task-management.com/task-management/pkg/models"
)

// TaskRepository is the persistence contract for tasks. The service layer
// only depends on this interface so tests can swap in a mock.
type TaskRepository interface {
	// FindAll returns a snapshot of every stored task. Later mutations do
	// not affect the returned slice.
	FindAll(ctx context.Context) ([]model.Task, error)
	// FindByID returns (nil, nil) when no task has the given id; an id of
	// zero or less is treated as absent, not as an error.
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	// Save assigns an id and both timestamps when the task is new, or
	// overwrites the existing entry and refreshes UpdatedAt when it is not.
	Save(ctx context.Context, task *model.Task) (*model.Task, error)
	// DeleteByID removes the entry if present. Deleting an absent id is a
	// silent no-op; the service layer is responsible for raising not-found.
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// FindByStatus returns the tasks whose status equals the given value.
	// An empty status yields an empty slice; callers are expected to pass a
	// pre-validated status.
	FindByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error)
	Count(ctx context.Context) (int64, error)
	// DeleteAll clears every entry and resets the id generator to 1.
	DeleteAll(ctx context.Context) error
}

// InMemoryTaskRepository keeps tasks in a mutex-guarded map keyed by id,
// with an independent atomic counter for id assignment. The map and the
// counter are each safe on their own; sequences of calls are not atomic
// and callers must tolerate benign races between them.
type InMemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[int64]model.Task
	idGen atomic.Int64
}

func NewInMemoryTaskRepository() *InMemoryTaskRepository {
	return &InMemoryTaskRepository{
		tasks: make(map[int64]model.Task),
	}
}

func (r *InMemoryTaskRepository) FindAll(ctx context.Context) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *InMemoryTaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (r *InMemoryTaskRepository) Save(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task == nil {
		return nil, apperrors.NewInvalidArgument("task must not be nil")
	}

	saved := *task
	now := time.Now().UTC()

	if !saved.Persisted() {
		saved.ID = r.idGen.Add(1)
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now

	r.mu.Lock()
	r.tasks[saved.ID] = saved
	r.mu.Unlock()

	return &saved, nil
}

func (r *InMemoryTaskRepository) DeleteByID(ctx context.Context, id int64) error {
	r.mu.Lock()
	delete(r.tasks, id)
	r.mu.Unlock()
	return nil
}

func (r *InMemoryTaskRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tasks[id]
	return ok, nil
}

func (r *InMemoryTaskRepository) FindByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, 0)
	for _, task := range r.tasks {
		if task.Status == status {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *InMemoryTaskRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.tasks)), nil
}

func (r *InMemoryTaskRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	r.tasks = make(map[int64]model.Task)
	r.idGen.Store(0)
	r.mu.Unlock()

	return nil
}

// Statistics describes the current state of the repository, for debugging
// and tests.
type Statistics struct {
	TotalTasks    int64
	NextID        int64
	TasksByStatus map[model.TaskStatus]int64
}

// Statistics is only available on the concrete in-memory repository; it is
// not part of the TaskRepository contract.
func (r *InMemoryTaskRepository) Statistics() Statistics {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byStatus := make(map[model.TaskStatus]int64)
	for _, task := range r.tasks {
		byStatus[task.Status]++
	}

	return Statistics{
		TotalTasks:    int64(len(r.tasks)),
		NextID:        r.idGen.Load() + 1,
		TasksByStatus: byStatus,
	}
}
