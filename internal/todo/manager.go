// Package todo implements the in-memory task list behind the console
// application. It is single-user and deliberately unpersisted: state lives
// for the lifetime of the process only.
package todo

import (
	"strings"
	"time"
	"unicode/utf8"

	"todokeeper/models"
)

// Task is a single console todo item.
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}

// Manager holds the task list and hands out monotonically increasing ids.
// Lookups are linear scans; the list is interactive-session sized.
//
// Manager is not safe for concurrent use; the terminal UI drives it from a
// single goroutine.
type Manager struct {
	tasks  []Task
	nextID int64
}

// NewManager returns an empty task manager.
func NewManager() *Manager {
	return &Manager{
		tasks:  make([]Task, 0),
		nextID: 1,
	}
}

// Add validates the fields and appends a new task.
//
// The title must be 1-200 characters after trimming; the description is
// optional and capped at 1000 characters.
func (m *Manager) Add(title, description string) (Task, error) {
	title, err := validTitle(title)
	if err != nil {
		return Task{}, err
	}
	description, err = validDescription(description)
	if err != nil {
		return Task{}, err
	}

	task := Task{
		ID:          m.nextID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}
	m.tasks = append(m.tasks, task)
	m.nextID++

	return task, nil
}

// All returns a copy of the task list in insertion order.
func (m *Manager) All() []Task {
	out := make([]Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Get returns the task with the given id.
func (m *Manager) Get(id int64) (Task, error) {
	idx := m.indexOf(id)
	if idx < 0 {
		return Task{}, ErrTaskNotFound
	}
	return m.tasks[idx], nil
}

// Update changes the title and/or description of a task. Nil fields are left
// untouched; provided fields are validated with the same rules as Add.
func (m *Manager) Update(id int64, title, description *string) (Task, error) {
	idx := m.indexOf(id)
	if idx < 0 {
		return Task{}, ErrTaskNotFound
	}

	if title != nil {
		validated, err := validTitle(*title)
		if err != nil {
			return Task{}, err
		}
		m.tasks[idx].Title = validated
	}
	if description != nil {
		validated, err := validDescription(*description)
		if err != nil {
			return Task{}, err
		}
		m.tasks[idx].Description = validated
	}

	return m.tasks[idx], nil
}

// SetCompleted marks a task as done or not done.
func (m *Manager) SetCompleted(id int64, completed bool) (Task, error) {
	idx := m.indexOf(id)
	if idx < 0 {
		return Task{}, ErrTaskNotFound
	}

	m.tasks[idx].Completed = completed
	return m.tasks[idx], nil
}

// Toggle flips the completion flag of a task.
func (m *Manager) Toggle(id int64) (Task, error) {
	idx := m.indexOf(id)
	if idx < 0 {
		return Task{}, ErrTaskNotFound
	}

	m.tasks[idx].Completed = !m.tasks[idx].Completed
	return m.tasks[idx], nil
}

// Delete removes a task.
func (m *Manager) Delete(id int64) error {
	idx := m.indexOf(id)
	if idx < 0 {
		return ErrTaskNotFound
	}

	m.tasks = append(m.tasks[:idx], m.tasks[idx+1:]...)
	return nil
}

// Pending returns all tasks that are not completed, in insertion order.
func (m *Manager) Pending() []Task {
	return m.filter(false)
}

// Completed returns all completed tasks, in insertion order.
func (m *Manager) Completed() []Task {
	return m.filter(true)
}

func (m *Manager) filter(completed bool) []Task {
	out := make([]Task, 0)
	for _, task := range m.tasks {
		if task.Completed == completed {
			out = append(out, task)
		}
	}
	return out
}

func (m *Manager) indexOf(id int64) int {
	for i, task := range m.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func validTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > models.TaskTitleMaxLen {
		return "", ErrTitleInvalid
	}
	return trimmed, nil
}

func validDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if utf8.RuneCountInString(trimmed) > models.TaskDescriptionMaxLen {
		return "", ErrDescriptionTooLong
	}
	return trimmed, nil
}
