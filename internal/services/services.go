package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adanyl0v/go-task-tracker/internal/daterange"
	"github.com/adanyl0v/go-task-tracker/internal/models"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrValidation   = errors.New("validation failed")
)

// ValidationError points at the request field that was rejected.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type TaskService interface {
	// CreateTask stores a new task built from the given fields.
	//
	// It returns a ValidationError if empId is missing or blank.
	CreateTask(ctx context.Context, patch models.TaskPatch) (*models.Task, error)

	// GetTaskByID returns ErrTaskNotFound if the ID does not resolve.
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)

	// FindTasksByEmpID and FindTasksByProject match case-insensitively and
	// return an empty slice, not an error, when nothing matches.
	FindTasksByEmpID(ctx context.Context, empID string) ([]*models.Task, error)
	FindTasksByProject(ctx context.Context, project string) ([]*models.Task, error)

	ListTasks(ctx context.Context) ([]*models.Task, error)

	// QueryTasks looks tasks up by the optional match key and narrows them
	// to the given date range.
	QueryTasks(ctx context.Context, params QueryTasksParams) ([]*models.Task, error)

	// UpdateTask overwrites the fields present in the patch. A patch that
	// carries subtasks replaces the whole subtask list.
	//
	// It returns ErrTaskNotFound if the ID does not resolve or a
	// ValidationError if the update would leave empId blank.
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)

	// DeleteTask removes the task with its subtasks. Deleting an ID that is
	// already gone returns ErrTaskNotFound.
	DeleteTask(ctx context.Context, id string) error
}

type QueryTasksParams struct {
	Match *models.MatchKey
	Range daterange.Range
}
