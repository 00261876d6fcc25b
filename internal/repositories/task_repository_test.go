package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "task-management.com/task-management/internal/errors"
	model "task-management.com/task-management/pkg/models"
)

func newTask(title string, status model.TaskStatus) *model.Task {
	return &model.Task{Title: title, Status: status}
}

func TestSaveAssignsSequentialIDs(t *testing.T) {
	repo := NewInMemoryTaskRepository()
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		saved, err := repo.Save(ctx, newTask(fmt.Sprintf("task %d", i), model.StatusTodo))
		require.NoError(t, err)
		assert.Equal(t, i, saved.ID)
		assert.False(t, saved.CreatedAt.IsZero())
		assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	}
}

func TestSaveNilTask(t *testing.T) {
	repo := NewInMemoryTaskRepository()

	_, err := repo.Save(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err))
}

func TestSaveExistingOverwrites(t *testing.T) {
	repo := NewInMemoryTaskRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTask("original", model.StatusTodo))
	require.NoError(t, err)

	saved.Title = "changed"
	saved.Status = model.StatusCompleted
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, saved.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(saved.UpdatedAt))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "changed", found.Title)
	assert.Equal(t, model.StatusCompleted, found.Status)
}

func TestFindByIDMissing(t *testing.T) {
	repo := NewInMemoryTaskRepository()
	ctx := context.Background()

	task, err := repo.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, task)

	task, err = repo.FindByID(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestFindAllReturnsSnapshot(t *testing.T) {
	repo := NewInMemoryTaskRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, newTask("first", model.StatusTodo))
	require.NoError(t, err)

	snapshot, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	// Mutations after the call must not leak into the snapshot, and
	// mutating the snapshot must not leak into the store.
	_, err = repo.Save(ctx, newTask("second", model.StatusTodo))
	require.NoError(t, err)
	assert.Len(t, snapshot, 1)

	snapshot[0].Title = "tampered"
	found, err := repo.FindByID(ctx, snapshot[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "first", found.Title)
}

func TestDeleteByIDAbsentIsNoOp(t *testing.T) {
	repo := NewInMemoryTaskRepository()

	err := repo.DeleteByID(context.Background(), 99)
	assert.NoError(t, err)
}

func TestExistsByID(t *testing.T) {
	repo := NewInMemoryTaskRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTask("exists", model.StatusTodo))
	require.NoError(t, err)

	exists, err := repo.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, saved.ID+1)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))
	exists, err = repo.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindByStatus(t *testing.T) {
	repo := NewInMemoryTaskRepository()
	ctx := context.Background()

	statuses := []model.TaskStatus{
		model.StatusTodo,
		model.StatusTodo,
		model.StatusInProgress,
		model.StatusCompleted,
	}
	for i, status := range statuses {
		_, err := repo.Save(ctx, newTask(fmt.Sprintf("task %d", i), status))
		require.NoError(t, err)
	}

	todo, err := repo.FindByStatus(ctx, model.StatusTodo)
	require.NoError(t, err)
	assert.Len(t, todo, 2)
	for _, task := range todo {
		assert.Equal(t, model.StatusTodo, task.Status)
	}

	completed, err := repo.FindByStatus(ctx, model.StatusCompleted)
	require.NoError(t, err)
	assert.Len(t, completed, 1)

	// Defensive path: an unvalidated empty status yields an empty slice.
	none, err := repo.FindByStatus(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteAllResetsIDGenerator(t *testing.T) {
	repo := NewInMemoryTaskRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, newTask("one", model.StatusTodo))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newTask("two", model.StatusTodo))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteAll(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	saved, err := repo.Save(ctx, newTask("fresh", model.StatusTodo))
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
}

func TestDeleteAllConcurrentWithSaves(t *testing.T) {
	repo := NewInMemoryTaskRepository()
	ctx := context.Background()

	// Wipes racing with saves must leave the counter reset consistent with
	// the cleared map once everything settles.
	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			_, _ = repo.Save(ctx, newTask("racing", model.StatusTodo))
		}()
		go func() {
			defer wg.Done()
			_ = repo.DeleteAll(ctx)
		}()
	}
	wg.Wait()

	require.NoError(t, repo.DeleteAll(ctx))

	saved, err := repo.Save(ctx, newTask("settled", model.StatusTodo))
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestStatistics(t *testing.T) {
	repo := NewInMemoryTaskRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, newTask("a", model.StatusTodo))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newTask("b", model.StatusCompleted))
	require.NoError(t, err)

	stats := repo.Statistics()
	assert.Equal(t, int64(2), stats.TotalTasks)
	assert.Equal(t, int64(3), stats.NextID)
	assert.Equal(t, int64(1), stats.TasksByStatus[model.StatusTodo])
	assert.Equal(t, int64(1), stats.TasksByStatus[model.StatusCompleted])
}

func TestConcurrentSaves(t *testing.T) {
	repo := NewInMemoryTaskRepository()
	ctx := context.Background()

	const concurrentCount = 50
	var wg sync.WaitGroup
	wg.Add(concurrentCount)

	ids := make(chan int64, concurrentCount)

	for i := 0; i < concurrentCount; i++ {
		go func() {
			defer wg.Done()
			saved, err := repo.Save(ctx, newTask("concurrent", model.StatusTodo))
			if err != nil {
				t.Errorf("concurrent save failed: %v", err)
				return
			}
			ids <- saved.ID
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if id <= 0 || id > concurrentCount {
			t.Errorf("id %d outside expected range", id)
		}
		if seen[id] {
			t.Errorf("duplicate id %d assigned", id)
		}
		seen[id] = true
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(concurrentCount), count)
}

func TestConcurrentMixedOperations(t *testing.T) {
	repo := NewInMemoryTaskRepository()
	ctx := context.Background()

	const taskCount = 20
	for i := 0; i < taskCount; i++ {
		_, err := repo.Save(ctx, newTask("seed", model.StatusTodo))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	wg.Add(taskCount * 3)

	for i := int64(1); i <= taskCount; i++ {
		go func(id int64) {
			defer wg.Done()
			_, _ = repo.FindByID(ctx, id)
		}(i)
		go func(id int64) {
			defer wg.Done()
			if id%2 == 0 {
				_ = repo.DeleteByID(ctx, id)
			} else {
				_, _ = repo.FindAll(ctx)
			}
		}(i)
		go func(id int64) {
			defer wg.Done()
			_, _ = repo.FindByStatus(ctx, model.StatusTodo)
		}(i)
	}

	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(taskCount/2), count)
}
