package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

func TestMemoryRepository_InsertGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Insert(ctx, &models.Task{EmpID: "E1", Project: "Alpha"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.NotNil(t, created.Subtasks)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_InsertRequiresEmpID(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Insert(context.Background(), &models.Task{EmpID: "  "})
	assert.ErrorIs(t, err, ErrEmpIDRequired)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Insert(ctx, &models.Task{EmpID: "E1", Subtasks: []models.Subtask{{Title: "A"}}})
	require.NoError(t, err)

	created.Subtasks[0].Title = "mutated"
	created.Project = "mutated"

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Subtasks[0].Title)
	assert.Empty(t, got.Project)
}

func TestMemoryRepository_FindBy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, task := range []*models.Task{
		{EmpID: "E1", Project: "Alpha"},
		{EmpID: "e1", Project: "Beta"},
		{EmpID: "E10", Project: "alpha"},
	} {
		_, err := repo.Insert(ctx, task)
		require.NoError(t, err)
	}

	byEmp, err := repo.FindBy(ctx, models.MatchKey{Field: models.MatchEmpID, Value: "E1"})
	require.NoError(t, err)
	require.Len(t, byEmp, 2)
	assert.Equal(t, "Alpha", byEmp[0].Project)
	assert.Equal(t, "Beta", byEmp[1].Project)

	byProject, err := repo.FindBy(ctx, models.MatchKey{Field: models.MatchProject, Value: "ALPHA"})
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	none, err := repo.FindBy(ctx, models.MatchKey{Field: models.MatchEmpID, Value: "E2"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryRepository_Update(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Insert(ctx, &models.Task{EmpID: "E1", Project: "Alpha"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, func(task *models.Task) error {
		task.Status = models.StatusCompleted
		task.ID = "overwritten"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, "Alpha", updated.Project)

	_, err = repo.Update(ctx, "missing", func(*models.Task) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_UpdateAbortsOnError(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Insert(ctx, &models.Task{EmpID: "E1", Project: "Alpha"})
	require.NoError(t, err)

	errBoom := errors.New("boom")
	_, err = repo.Update(ctx, created.ID, func(task *models.Task) error {
		task.Project = "Beta"
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = repo.Update(ctx, created.ID, func(task *models.Task) error {
		task.EmpID = ""
		return nil
	})
	assert.ErrorIs(t, err, ErrEmpIDRequired)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Project)
	assert.Equal(t, "E1", got.EmpID)
}

func TestMemoryRepository_ConcurrentUpdatesAreSerialized(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Insert(ctx, &models.Task{EmpID: "E1"})
	require.NoError(t, err)

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, created.ID, func(task *models.Task) error {
				task.Subtasks = append(task.Subtasks, models.Subtask{Title: "step"})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Subtasks, writers)
}

func TestMemoryRepository_DeleteTwiceFails(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.Insert(ctx, &models.Task{EmpID: "E1"})
	require.NoError(t, err)
	second, err := repo.Insert(ctx, &models.Task{EmpID: "E2"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), ErrNotFound)

	_, err = repo.Get(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}
