package store

import (
	"context"

	"todokeeper/models"
)

// UserRepository is the data-access contract for account records.
// Email lookups are case-folded by the caller before reaching this layer.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// TaskRepository is the data-access contract for task records.
//
// Read and mutate operations deliberately take no owner filter: ownership is
// decided by the service layer, which needs to distinguish a missing task
// from a task owned by someone else.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	FindTaskByID(ctx context.Context, taskID int64) (models.Task, error)
	FindTasksByUser(ctx context.Context, userID string, completed *bool) ([]models.Task, error)
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)
	SetTaskCompleted(ctx context.Context, taskID int64, completed bool) (models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}
