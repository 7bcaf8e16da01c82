package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"todokeeper/internal/logger"
	"todokeeper/models"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns it with server-assigned fields
// (TaskID, timestamps, default completion flag).
//
// UserID must already carry the authenticated owner's identity; this layer
// never derives it.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTask, task.UserID, task.Title, nullableString(task.Description))
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	created, err := scanTaskRow(row)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindTaskByID retrieves a single task regardless of owner. Ownership is the
// service layer's decision: it needs the stored owner id to tell a forbidden
// access apart from a missing task.
//
// Returns [ErrTaskNotFound] when no task has the given id.
func (r *taskRepository) FindTaskByID(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findTaskByID, taskID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTaskByID").Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanTaskRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.FindTaskByID").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindTasksByUser lists all tasks owned by userID, newest first, optionally
// filtered by completion status.
func (r *taskRepository) FindTasksByUser(ctx context.Context, userID string, completed *bool) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC, task_id DESC")

	if completed != nil {
		builder = builder.Where(sq.Eq{"completed": *completed})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasksByUser").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasksByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		var description sql.NullString
		if err = rows.Scan(&task.TaskID, &task.UserID, &task.Title, &description,
			&task.Completed, &task.CreatedAt, &task.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*taskRepository.FindTasksByUser").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		task.Description = description.String
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// UpdateTask applies a partial update (title and/or description) and bumps
// updated_at. Nil fields are left untouched; the owner column is never part
// of the SET clause.
//
// Returns [ErrTaskNotFound] when the task does not exist.
func (r *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update("tasks").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"task_id": update.TaskID}).
		Suffix("RETURNING task_id, user_id, title, description, completed, created_at, updated_at")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", nullableString(*update.Description))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error building query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error executing statement")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updated, err := scanTaskRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// SetTaskCompleted sets the completion flag and bumps updated_at.
//
// Returns [ErrTaskNotFound] when the task does not exist.
func (r *taskRepository) SetTaskCompleted(ctx context.Context, taskID int64, completed bool) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, setTaskCompleted, taskID, completed)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.SetTaskCompleted").Msg("error executing statement")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updated, err := scanTaskRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.SetTaskCompleted").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteTask removes the task with the given id.
//
// Returns [ErrTaskNotFound] when no row was deleted.
func (r *taskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTask, taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// scanTaskRow reads one task row, mapping a NULL description to "".
func scanTaskRow(row *sql.Row) (models.Task, error) {
	var task models.Task
	var description sql.NullString

	if err := row.Scan(&task.TaskID, &task.UserID, &task.Title, &description,
		&task.Completed, &task.CreatedAt, &task.UpdatedAt); err != nil {
		return models.Task{}, err
	}

	task.Description = description.String

	return task, nil
}
