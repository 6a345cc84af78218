package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common task validation errors
var (
	ErrEmptyTaskID    = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskOwner = fmt.Errorf("%w: task owner cannot be empty", ErrValidation)
	ErrEmptyTitle     = fmt.Errorf("%w: title is required", ErrValidation)
	ErrInvalidStatus  = fmt.Errorf("%w: status must be either pending or done", ErrValidation)
)

// TaskStatus is the closed set of states a task can be in.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

// IsValid reports whether s is one of the allowed status values.
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusDone
}

// Toggle returns the opposite status. Task status is a two-state toggle with
// no other transitions.
func (s TaskStatus) Toggle() TaskStatus {
	if s == TaskStatusDone {
		return TaskStatusPending
	}
	return TaskStatusDone
}

// Task represents a single to-do item. Every task has exactly one owner, and
// all store lookups are scoped to that owner.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a Task owned by userID with a fresh ID and timestamps.
// Title and description are trimmed; an empty status defaults to pending.
func NewTask(userID uuid.UUID, title, description string, status TaskStatus) (*Task, error) {
	if status == "" {
		status = TaskStatusPending
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the task's fields against the domain rules.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.UserID == uuid.Nil {
		return ErrEmptyTaskOwner
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
