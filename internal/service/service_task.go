package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"todokeeper/internal/logger"
	"todokeeper/internal/store"
	"todokeeper/models"
)

// taskService is the concrete implementation of TaskService. It owns the two
// invariants of the task domain: field validation and ownership isolation.
type taskService struct {
	taskRepository store.TaskRepository

	logger *logger.Logger
}

// NewTaskService constructs a TaskService backed by the given repository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// authorizeTaskAccess decides whether requesterID may act on task.
//
// Owner isolation: a task owned by a different account yields
// ErrTaskAccessForbidden. The not-found case never reaches this function —
// the repository reports it first, so a missing task is 404 before ownership
// is even evaluated. The 403/404 split deliberately reveals that a foreign
// task exists without granting access.
func authorizeTaskAccess(task models.Task, requesterID string) error {
	if task.UserID != requesterID {
		return ErrTaskAccessForbidden
	}
	return nil
}

// CreateTask validates the request and persists a new task owned by
// requesterID. The owner always comes from the authenticated identity, never
// from client-supplied input.
func (t *taskService) CreateTask(ctx context.Context, requesterID string, req models.CreateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	title, err := validateTitle(req.Title)
	if err != nil {
		return models.Task{}, err
	}
	description, err := validateDescription(req.Description)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		UserID:      requesterID,
		Title:       title,
		Description: description,
	}

	created, err := t.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Str("user_id", requesterID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return created, nil
}

// ListTasks returns the requester's own tasks, optionally filtered by
// completion status. Other users' tasks are never visible here: the query is
// scoped to the owner.
func (t *taskService) ListTasks(ctx context.Context, requesterID string, completed *bool) ([]models.Task, error) {
	tasks, err := t.taskRepository.FindTasksByUser(ctx, requesterID, completed)
	if err != nil {
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// GetTask loads a single task and enforces owner isolation.
func (t *taskService) GetTask(ctx context.Context, requesterID string, taskID int64) (models.Task, error) {
	task, err := t.taskRepository.FindTaskByID(ctx, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("task lookup ended with error: %w", err)
	}

	if err = authorizeTaskAccess(task, requesterID); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// UpdateTask applies a partial update to the requester's task. Provided
// fields are validated with the same rules as creation; the owner column is
// never touched.
func (t *taskService) UpdateTask(ctx context.Context, requesterID string, taskID int64, req models.UpdateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	update := models.TaskUpdate{TaskID: taskID}

	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			return models.Task{}, err
		}
		update.Title = &title
	}
	if req.Description != nil {
		description, err := validateDescription(*req.Description)
		if err != nil {
			return models.Task{}, err
		}
		update.Description = &description
	}

	// Ownership gate runs on the stored row before any write.
	if _, err := t.GetTask(ctx, requesterID, taskID); err != nil {
		return models.Task{}, err
	}

	updated, err := t.taskRepository.UpdateTask(ctx, update)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	return updated, nil
}

// ToggleTaskCompletion flips the completion flag of the requester's task.
//
// The flip is a read-then-write on the current value; two concurrent toggles
// of the same task interleave last-write-wins.
func (t *taskService) ToggleTaskCompletion(ctx context.Context, requesterID string, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := t.GetTask(ctx, requesterID, taskID)
	if err != nil {
		return models.Task{}, err
	}

	updated, err := t.taskRepository.SetTaskCompleted(ctx, taskID, !task.Completed)
	if err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task completion toggle ended with error")
		return models.Task{}, fmt.Errorf("task completion toggle ended with error: %w", err)
	}

	return updated, nil
}

// DeleteTask removes the requester's task after the ownership gate.
func (t *taskService) DeleteTask(ctx context.Context, requesterID string, taskID int64) error {
	log := logger.FromContext(ctx)

	if _, err := t.GetTask(ctx, requesterID, taskID); err != nil {
		return err
	}

	if err := t.taskRepository.DeleteTask(ctx, taskID); err != nil {
		log.Err(err).Int64("task_id", taskID).Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	return nil
}

// validateTitle trims the title and checks the 1-200 character bound.
func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > models.TaskTitleMaxLen {
		return "", ErrValidationTitleRequired
	}
	return trimmed, nil
}

// validateDescription trims the description and checks the 1000 character cap.
func validateDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if utf8.RuneCountInString(trimmed) > models.TaskDescriptionMaxLen {
		return "", ErrValidationDescriptionLen
	}
	return trimmed, nil
}
