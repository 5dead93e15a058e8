package repository

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

var (
	ErrNotFound = errors.New("task not found")
	// ErrEmpIDRequired is returned when a write would store a blank empId.
	ErrEmpIDRequired = errors.New("empId is required")
)

// MutateFunc edits a task in place during Update. Returning an error
// aborts the update and leaves the stored task unchanged.
type MutateFunc func(task *models.Task) error

// TaskRepository persists task aggregates. Subtasks are stored and removed
// together with their parent task.
type TaskRepository interface {
	// Insert assigns the task a new ID and timestamps and stores it.
	Insert(ctx context.Context, task *models.Task) (*models.Task, error)

	// Get returns ErrNotFound if no task has the given ID.
	Get(ctx context.Context, id string) (*models.Task, error)

	// FindBy returns the tasks whose field equals value, ignoring case.
	// It returns an empty slice when nothing matches.
	FindBy(ctx context.Context, key models.MatchKey) ([]*models.Task, error)

	// List returns every task, oldest first.
	List(ctx context.Context) ([]*models.Task, error)

	// Update loads the task, applies mutate and writes it back as a single
	// atomic step. Concurrent updates of the same task are serialized.
	Update(ctx context.Context, id string, mutate MutateFunc) (*models.Task, error)

	// Delete returns ErrNotFound if no task has the given ID, including
	// when it was already deleted.
	Delete(ctx context.Context, id string) error
}
