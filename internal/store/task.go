package store

import (
	"context"

	"github.com/parkerross/totodo-api/internal/domain"
)

// TaskStore defines the interface for task data persistence. All lookups key
// on the externally-visible task uuid.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrTaskUUIDExists if the external uuid is already taken.
	Create(ctx context.Context, task *domain.Task) error

	// List returns all tasks in store-native order. Ordering is not
	// guaranteed stable across calls.
	List(ctx context.Context) ([]*domain.Task, error)

	// Update merges the patch into the task with the given external uuid and
	// returns the updated record. Fields not set in the patch are unchanged.
	// Returns ErrTaskNotFound if no task has that uuid.
	Update(ctx context.Context, externalUUID string, patch *domain.TaskPatch) (*domain.Task, error)

	// Delete removes the task with the given external uuid and returns the
	// removed record. Returns ErrTaskNotFound if no task has that uuid.
	Delete(ctx context.Context, externalUUID string) (*domain.Task, error)
}
