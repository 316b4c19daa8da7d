package mocks

import (
	"context"
	"sync"

	"github.com/parkerross/totodo-api/internal/domain"
	"github.com/parkerross/totodo-api/internal/store"
)

// MockTaskStore implements store.TaskStore with an in-memory slice, keyed by
// the external uuid like the real store. Patch merge semantics match the
// PostgreSQL implementation: nil fields leave the record unchanged.
type MockTaskStore struct {
	mu    sync.Mutex
	tasks []*domain.Task

	// CreateErr, ListErr, UpdateErr, DeleteErr force failures when set
	CreateErr error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates an empty in-memory task store.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{}
}

// Create implements store.TaskStore.Create.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.tasks {
		if existing.UUID == task.UUID {
			return store.ErrTaskUUIDExists
		}
	}

	copied := *task
	m.tasks = append(m.tasks, &copied)
	return nil
}

// List implements store.TaskStore.List.
func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		copied := *task
		out = append(out, &copied)
	}
	return out, nil
}

// Update implements store.TaskStore.Update.
func (m *MockTaskStore) Update(
	ctx context.Context,
	externalUUID string,
	patch *domain.TaskPatch,
) (*domain.Task, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, task := range m.tasks {
		if task.UUID != externalUUID {
			continue
		}
		if patch.Text != nil {
			task.Text = *patch.Text
		}
		if patch.Description != nil {
			task.Description = *patch.Description
		}
		if patch.Status != nil {
			task.Status = *patch.Status
		}
		if patch.CompletedAt != nil {
			t := *patch.CompletedAt
			task.CompletedAt = &t
		}
		copied := *task
		return &copied, nil
	}
	return nil, store.ErrTaskNotFound
}

// Delete implements store.TaskStore.Delete.
func (m *MockTaskStore) Delete(ctx context.Context, externalUUID string) (*domain.Task, error) {
	if m.DeleteErr != nil {
		return nil, m.DeleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, task := range m.tasks {
		if task.UUID == externalUUID {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return task, nil
		}
	}
	return nil, store.ErrTaskNotFound
}
