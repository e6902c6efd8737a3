package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rfelton/taskboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// It handles domain validation and password hashing internally; only the
	// bcrypt hash is persisted.
	// Returns ErrUsernameExists or ErrEmailExists on unique violations.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user never contains a plaintext password.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// WithTx returns a UserStore bound to the provided transaction, so that
	// multiple operations can execute atomically. The transaction is created
	// and managed by the caller (typically via RunInTransaction).
	WithTx(tx *sql.Tx) UserStore
}
