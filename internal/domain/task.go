package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task validation errors.
var (
	ErrEmptyTaskID   = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskUUID = fmt.Errorf("%w: task uuid cannot be empty", ErrValidation)
	ErrEmptyTaskText = fmt.Errorf("%w: task text cannot be empty", ErrValidation)
)

// TaskStatusPending is the status assigned to newly created tasks.
// Status is otherwise a free-form string chosen by the client.
const TaskStatusPending = "pending"

// Task represents a single to-do item. The store-assigned ID is internal;
// clients address tasks exclusively by the externally-visible UUID, which is
// generated at creation when the client does not supply one.
type Task struct {
	ID          uuid.UUID  `json:"-"`
	UUID        string     `json:"uuid"`
	Text        string     `json:"task"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// NewTask creates a new Task with the given text, optional description, and
// optional external UUID. A missing externalUUID is generated; a missing
// status defaults to pending.
func NewTask(text, description, externalUUID string) (*Task, error) {
	if externalUUID == "" {
		externalUUID = uuid.NewString()
	}

	task := &Task{
		ID:          uuid.New(),
		UUID:        externalUUID,
		Text:        text,
		Description: description,
		Status:      TaskStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.UUID == "" {
		return ErrEmptyTaskUUID
	}

	if t.Text == "" {
		return ErrEmptyTaskText
	}

	return nil
}

// TaskPatch describes a partial update to a task. Nil fields are left
// unchanged; the merge is applied by the store so concurrent patches to
// different fields do not clobber each other's columns.
type TaskPatch struct {
	Text        *string
	Description *string
	Status      *string
	CompletedAt *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p *TaskPatch) IsEmpty() bool {
	return p.Text == nil && p.Description == nil && p.Status == nil && p.CompletedAt == nil
}
