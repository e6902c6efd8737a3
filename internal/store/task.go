package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rfelton/taskboard-api/internal/domain"
)

// TaskFilter narrows a task listing. Nil / empty fields are ignored.
// Filters combine conjunctively.
type TaskFilter struct {
	// Completed, when set, matches tasks with the exact completion flag.
	Completed *bool

	// DueDate, when set, matches tasks due on that calendar date.
	DueDate *time.Time

	// Search, when non-empty, matches tasks whose title or description
	// contains the term (case-insensitive).
	Search string
}

// TaskStore defines the interface for task data persistence.
//
// Every operation takes the owner's user ID and is scoped to rows owned by
// that user. This scoping is the single ownership enforcement point in the
// system: a task that exists but belongs to someone else behaves exactly
// like a task that does not exist.
type TaskStore interface {
	// Create saves a new task to the store. The task's UserID must already
	// be set to the owner; callers above the service layer never control it.
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task owned by userID.
	// Returns ErrTaskNotFound if no such task is owned by that user.
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	// List retrieves the tasks owned by userID that match the filter,
	// ordered stably by creation time then ID. Returns an empty slice, not
	// nil, when nothing matches.
	List(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*domain.Task, error)

	// Update overwrites the mutable fields (title, description, due date,
	// completed) of a task owned by userID. The owner is immutable.
	// Returns ErrTaskNotFound if no such task is owned by that user.
	Update(ctx context.Context, userID uuid.UUID, task *domain.Task) error

	// Delete removes a task owned by userID.
	// Returns ErrTaskNotFound if no such task is owned by that user; repeated
	// deletes keep returning ErrTaskNotFound.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error

	// WithTx returns a TaskStore bound to the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
