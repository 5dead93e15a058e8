package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

// Schema creates the tasks table. Subtasks live in a jsonb column so a
// task and its subtasks are always written by one statement.
const Schema = `
CREATE TABLE IF NOT EXISTS tasks (
    id          uuid PRIMARY KEY,
    emp_id      text NOT NULL CHECK (btrim(emp_id) <> ''),
    project     text NOT NULL DEFAULT '',
    date        text NOT NULL DEFAULT '',
    start_date  text NOT NULL DEFAULT '',
    due_date    text NOT NULL DEFAULT '',
    end_date    text NOT NULL DEFAULT '',
    completion  double precision,
    status      text NOT NULL DEFAULT '',
    remarks     text NOT NULL DEFAULT '',
    time_spent  text NOT NULL DEFAULT '',
    subtasks    jsonb NOT NULL DEFAULT '[]'::jsonb,
    created_at  timestamptz NOT NULL,
    updated_at  timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS tasks_emp_id_lower_idx ON tasks (lower(emp_id));
CREATE INDEX IF NOT EXISTS tasks_project_lower_idx ON tasks (lower(project));
`

const selectTaskColumns = `
SELECT id::text,
       emp_id,
       project,
       date,
       start_date,
       due_date,
       end_date,
       completion,
       status,
       remarks,
       time_spent,
       subtasks,
       created_at,
       updated_at
FROM tasks
`

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, Schema)
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Insert(ctx context.Context, task *models.Task) (*models.Task, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate task id: %w", err)
	}

	stored := task.Clone()
	stored.ID = id.String()
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt

	const insertTaskQuery = `
INSERT INTO tasks (id,
                   emp_id,
                   project,
                   date,
                   start_date,
                   due_date,
                   end_date,
                   completion,
                   status,
                   remarks,
                   time_spent,
                   subtasks,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`
	_, err = r.pool.Exec(
		ctx,
		insertTaskQuery,
		id,
		stored.EmpID,
		stored.Project,
		stored.Date,
		stored.StartDate,
		stored.DueDate,
		stored.EndDate,
		stored.Completion,
		stored.Status,
		stored.Remarks,
		stored.TimeSpent,
		stored.Subtasks,
		stored.CreatedAt,
		stored.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return stored, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Task, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	task, err := scanTask(r.pool.QueryRow(ctx, selectTaskColumns+`WHERE id = $1`, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to select task: %w", err)
	}
	return task, nil
}

func (r *PostgresRepository) FindBy(ctx context.Context, key models.MatchKey) ([]*models.Task, error) {
	var column string
	switch key.Field {
	case models.MatchEmpID:
		column = "emp_id"
	case models.MatchProject:
		column = "project"
	default:
		return nil, fmt.Errorf("unsupported match field: %q", key.Field)
	}

	query := selectTaskColumns + `WHERE lower(` + column + `) = lower($1)
ORDER BY created_at, id`
	return r.queryTasks(ctx, query, key.Value)
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Task, error) {
	return r.queryTasks(ctx, selectTaskColumns+`ORDER BY created_at, id`)
}

func (r *PostgresRepository) Update(ctx context.Context, id string, mutate MutateFunc) (*models.Task, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	task, err := scanTask(tx.QueryRow(ctx, selectTaskColumns+`WHERE id = $1 FOR UPDATE`, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to select task for update: %w", err)
	}
	createdAt := task.CreatedAt

	err = mutate(task)
	if err != nil {
		return nil, err
	}
	task.ID = id
	task.CreatedAt = createdAt
	task.UpdatedAt = time.Now().UTC()
	if task.Subtasks == nil {
		task.Subtasks = []models.Subtask{}
	}

	const updateTaskQuery = `
UPDATE tasks
SET emp_id = $1,
    project = $2,
    date = $3,
    start_date = $4,
    due_date = $5,
    end_date = $6,
    completion = $7,
    status = $8,
    remarks = $9,
    time_spent = $10,
    subtasks = $11,
    updated_at = $12
WHERE id = $13
`
	_, err = tx.Exec(
		ctx,
		updateTaskQuery,
		task.EmpID,
		task.Project,
		task.Date,
		task.StartDate,
		task.DueDate,
		task.EndDate,
		task.Completion,
		task.Status,
		task.Remarks,
		task.TimeSpent,
		task.Subtasks,
		task.UpdatedAt,
		taskID,
	)
	if err != nil {
		return nil, mapWriteError(err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return task, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, deleteTaskQuery, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) queryTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return tasks, nil
}

func scanTask(row pgx.Row) (*models.Task, error) {
	task := &models.Task{}
	err := row.Scan(
		&task.ID,
		&task.EmpID,
		&task.Project,
		&task.Date,
		&task.StartDate,
		&task.DueDate,
		&task.EndDate,
		&task.Completion,
		&task.Status,
		&task.Remarks,
		&task.TimeSpent,
		&task.Subtasks,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if task.Subtasks == nil {
		task.Subtasks = []models.Subtask{}
	}
	return task, nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
		return ErrEmpIDRequired
	}
	return fmt.Errorf("failed to write task: %w", err)
}
