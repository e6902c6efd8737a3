package mocks

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rfelton/taskboard-api/internal/domain"
	"github.com/rfelton/taskboard-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing, backed by an
// in-memory map keyed by task ID. The default implementation enforces the
// same ownership scoping as the real store: operations only see tasks owned
// by the given user ID, and everything else is ErrTaskNotFound.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	ListFn    func(ctx context.Context, userID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error)
	UpdateFn  func(ctx context.Context, userID uuid.UUID, task *domain.Task) error
	DeleteFn  func(ctx context.Context, userID, taskID uuid.UUID) error

	// Data for default implementation
	Tasks       map[uuid.UUID]*domain.Task
	CreateError error
	ListError   error
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a mock store with initialized defaults.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements the TaskStore interface.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	if err := task.Validate(); err != nil {
		return err
	}

	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// GetByID implements the TaskStore interface.
func (m *MockTaskStore) GetByID(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID, taskID)
	}

	task, exists := m.Tasks[taskID]
	if !exists || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

// List implements the TaskStore interface.
func (m *MockTaskStore) List(
	ctx context.Context,
	userID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, filter)
	}
	if m.ListError != nil {
		return nil, m.ListError
	}

	matched := make([]*domain.Task, 0)
	for _, task := range m.Tasks {
		if task.UserID != userID {
			continue
		}
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		if filter.DueDate != nil {
			if task.DueDate == nil {
				continue
			}
			fy, fm, fd := filter.DueDate.Date()
			ty, tm, td := task.DueDate.Date()
			if fy != ty || fm != tm || fd != td {
				continue
			}
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(task.Title), needle) &&
				!strings.Contains(strings.ToLower(task.Description), needle) {
				continue
			}
		}
		copied := *task
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID.String() < matched[j].ID.String()
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	return matched, nil
}

// Update implements the TaskStore interface.
func (m *MockTaskStore) Update(
	ctx context.Context,
	userID uuid.UUID,
	task *domain.Task,
) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, task)
	}

	if err := task.Validate(); err != nil {
		return err
	}

	existing, exists := m.Tasks[task.ID]
	if !exists || existing.UserID != userID {
		return store.ErrTaskNotFound
	}

	copied := *task
	copied.UserID = existing.UserID
	m.Tasks[task.ID] = &copied
	return nil
}

// Delete implements the TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, taskID)
	}

	task, exists := m.Tasks[taskID]
	if !exists || task.UserID != userID {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, taskID)
	return nil
}

// WithTx implements the TaskStore interface. The mock has no real
// transactions, so it returns itself.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
