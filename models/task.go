package models

import "time"

// Limits applied to task fields after trimming. Enforced in the service layer
// (HTTP API) and in the console task manager.
const (
	TaskTitleMaxLen       = 200
	TaskDescriptionMaxLen = 1000
)

// Task is a todo item owned by exactly one user.
type Task struct {
	// TaskID is the server-assigned identifier of the task.
	TaskID int64 `json:"id"`

	// UserID is the identifier of the owning account. It is stamped from the
	// authenticated identity at creation time and never changed by updates.
	UserID string `json:"user_id"`

	// Title is the short task summary, 1–200 characters after trimming.
	Title string `json:"title"`

	// Description is optional free text, at most 1000 characters.
	Description string `json:"description,omitempty"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskUpdate describes a partial update of a task. Nil fields are left
// untouched. The owner is deliberately absent: ownership is immutable.
type TaskUpdate struct {
	TaskID      int64   `json:"-"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}
