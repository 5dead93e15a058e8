package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/metrics"
	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/repository"
)

type taskServiceImpl struct {
	logger  zerolog.Logger
	repo    repository.TaskRepository
	metrics *metrics.Metrics
}

func NewTaskService(
	logger zerolog.Logger,
	repo repository.TaskRepository,
	m *metrics.Metrics,
) TaskService {
	return &taskServiceImpl{
		logger:  logger,
		repo:    repo,
		metrics: m,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, patch models.TaskPatch) (*models.Task, error) {
	task := &models.Task{}
	patch.ApplyTo(task)
	task.EmpID = strings.TrimSpace(task.EmpID)

	if task.EmpID == "" {
		s.logger.Error().Msg("empId is required")
		s.observe("create", ErrValidation)
		return nil, &ValidationError{Field: "empId", Message: "is required"}
	}

	created, err := s.repo.Insert(ctx, task)
	if err != nil {
		err = s.translate(err)
		s.logger.Error().
			Err(err).
			Str("emp_id", task.EmpID).
			Msg("failed to insert task")
		s.observe("create", err)
		return nil, err
	}
	s.logger.Debug().
		Str("task_id", created.ID).
		Int("subtasks", len(created.Subtasks)).
		Msg("inserted task")

	s.logger.Info().
		Str("task_id", created.ID).
		Str("emp_id", created.EmpID).
		Msg("created task")
	s.observe("create", nil)
	return created, nil
}

func (s *taskServiceImpl) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		err = s.translate(err)
		if errors.Is(err, ErrTaskNotFound) {
			s.logger.Error().
				Str("task_id", id).
				Msg("task not found")
		} else {
			s.logger.Error().
				Err(err).
				Str("task_id", id).
				Msg("failed to select task by id")
		}
		s.observe("get", err)
		return nil, err
	}

	s.logger.Debug().
		Str("task_id", id).
		Msg("selected task by id")
	s.observe("get", nil)
	return task, nil
}

func (s *taskServiceImpl) FindTasksByEmpID(ctx context.Context, empID string) ([]*models.Task, error) {
	return s.findBy(ctx, models.MatchKey{Field: models.MatchEmpID, Value: strings.TrimSpace(empID)})
}

func (s *taskServiceImpl) FindTasksByProject(ctx context.Context, project string) ([]*models.Task, error) {
	return s.findBy(ctx, models.MatchKey{Field: models.MatchProject, Value: strings.TrimSpace(project)})
}

func (s *taskServiceImpl) findBy(ctx context.Context, key models.MatchKey) ([]*models.Task, error) {
	tasks, err := s.repo.FindBy(ctx, key)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("field", string(key.Field)).
			Str("value", key.Value).
			Msg("failed to select tasks")
		s.observe("find", err)
		return nil, err
	}

	if len(tasks) == 0 {
		s.logger.Info().
			Str("field", string(key.Field)).
			Str("value", key.Value).
			Msg("no tasks found")
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("field", string(key.Field)).
		Str("value", key.Value).
		Msg("selected tasks")
	s.observe("find", nil)
	return tasks, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		s.observe("list", err)
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("listed tasks")
	s.observe("list", nil)
	return tasks, nil
}

func (s *taskServiceImpl) QueryTasks(ctx context.Context, params QueryTasksParams) ([]*models.Task, error) {
	var (
		tasks []*models.Task
		err   error
	)
	if params.Match == nil {
		tasks, err = s.ListTasks(ctx)
	} else {
		tasks, err = s.findBy(ctx, *params.Match)
	}
	if err != nil {
		return nil, err
	}

	filtered := FilterTasks(tasks, params.Range, nil)
	s.logger.Debug().
		Int("fetched", len(tasks)).
		Int("count", len(filtered)).
		Stringer("range", params.Range).
		Msg("filtered tasks")
	return filtered, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	if patch.Empty() {
		s.logger.Warn().
			Str("task_id", id).
			Msg("no fields to update")
		return s.GetTaskByID(ctx, id)
	}

	task, err := s.repo.Update(ctx, id, func(task *models.Task) error {
		patch.ApplyTo(task)
		task.EmpID = strings.TrimSpace(task.EmpID)
		if task.EmpID == "" {
			return &ValidationError{Field: "empId", Message: "must not be empty"}
		}
		return nil
	})
	if err != nil {
		err = s.translate(err)
		switch {
		case errors.Is(err, ErrTaskNotFound):
			s.logger.Error().
				Str("task_id", id).
				Msg("task not found")
		case errors.Is(err, ErrValidation):
			s.logger.Error().
				Err(err).
				Str("task_id", id).
				Msg("rejected task update")
		default:
			s.logger.Error().
				Err(err).
				Str("task_id", id).
				Msg("failed to update task")
		}
		s.observe("update", err)
		return nil, err
	}
	s.logger.Debug().
		Str("task_id", task.ID).
		Bool("subtasks_replaced", patch.Subtasks != nil).
		Msg("updated task")

	s.logger.Info().
		Str("task_id", task.ID).
		Str("emp_id", task.EmpID).
		Msg("updated task")
	s.observe("update", nil)
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		err = s.translate(err)
		if errors.Is(err, ErrTaskNotFound) {
			s.logger.Error().
				Str("task_id", id).
				Msg("task not found")
		} else {
			s.logger.Error().
				Err(err).
				Str("task_id", id).
				Msg("failed to delete task")
		}
		s.observe("delete", err)
		return err
	}

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	s.observe("delete", nil)
	return nil
}

// translate maps repository errors onto the service error set.
func (s *taskServiceImpl) translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrTaskNotFound
	case errors.Is(err, repository.ErrEmpIDRequired):
		return &ValidationError{Field: "empId", Message: "must not be empty"}
	default:
		return err
	}
}

func (s *taskServiceImpl) observe(operation string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrTaskNotFound):
		result = "not_found"
	case errors.Is(err, ErrValidation):
		result = "invalid"
	default:
		result = "error"
	}
	s.metrics.ObserveTaskOperation(operation, result)
}
