package service

import (
	"context"

	"todokeeper/models"
)

// AuthService covers the credential and token lifecycle: signup, login,
// token issuance, and token verification.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	TokenExpirySeconds() int64
}

// TaskService covers ownership-scoped task CRUD. Every operation takes the
// authenticated requester's id; access to another user's task fails with
// [ErrTaskAccessForbidden], distinct from a missing task.
type TaskService interface {
	CreateTask(ctx context.Context, requesterID string, req models.CreateTaskRequest) (models.Task, error)
	ListTasks(ctx context.Context, requesterID string, completed *bool) ([]models.Task, error)
	GetTask(ctx context.Context, requesterID string, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, requesterID string, taskID int64, req models.UpdateTaskRequest) (models.Task, error)
	ToggleTaskCompletion(ctx context.Context, requesterID string, taskID int64) (models.Task, error)
	DeleteTask(ctx context.Context, requesterID string, taskID int64) error
}
