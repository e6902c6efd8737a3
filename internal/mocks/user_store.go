package mocks

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/rfelton/taskboard-api/internal/domain"
	"github.com/rfelton/taskboard-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// MockUserStore implements store.UserStore for testing, backed by an
// in-memory map keyed by email.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	// Data for default implementation
	Users       map[string]*domain.User
	CreateError error
	GetError    error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface. The default implementation
// mirrors the real store's contract: it validates, hashes the password,
// and enforces unique username and email.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	if err := user.Validate(); err != nil {
		return err
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}
	for _, existing := range m.Users {
		if strings.EqualFold(existing.Username, user.Username) {
			return store.ErrUsernameExists
		}
	}

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.MinCost)
		if err != nil {
			return err
		}
		user.HashedPassword = string(hashed)
		user.Password = ""
	}

	m.Users[user.Email] = user
	return nil
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.GetError != nil {
		return nil, m.GetError
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// WithTx implements the UserStore interface. The mock has no real
// transactions, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
