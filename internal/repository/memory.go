package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	tasks map[string]*models.Task
	order []string
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tasks: map[string]*models.Task{},
		now:   time.Now,
	}
}

func (r *MemoryRepository) Insert(_ context.Context, task *models.Task) (*models.Task, error) {
	if strings.TrimSpace(task.EmpID) == "" {
		return nil, ErrEmpIDRequired
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	stored := task.Clone()
	stored.ID = id.String()
	stored.CreatedAt = r.now()
	stored.UpdatedAt = stored.CreatedAt

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return stored.Clone(), nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return task.Clone(), nil
}

func (r *MemoryRepository) FindBy(_ context.Context, key models.MatchKey) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*models.Task, 0)
	for _, id := range r.order {
		if task := r.tasks[id]; key.Matches(task) {
			tasks = append(tasks, task.Clone())
		}
	}
	return tasks, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*models.Task, 0, len(r.order))
	for _, id := range r.order {
		tasks = append(tasks, r.tasks[id].Clone())
	}
	return tasks, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, mutate MutateFunc) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}

	task := current.Clone()
	if err := mutate(task); err != nil {
		return nil, err
	}
	if strings.TrimSpace(task.EmpID) == "" {
		return nil, ErrEmpIDRequired
	}

	task.ID = current.ID
	task.CreatedAt = current.CreatedAt
	task.UpdatedAt = r.now()
	if task.Subtasks == nil {
		task.Subtasks = []models.Subtask{}
	}

	r.tasks[id] = task
	return task.Clone(), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(r.tasks, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
