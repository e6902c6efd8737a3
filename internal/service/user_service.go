package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rfelton/taskboard-api/internal/domain"
	"github.com/rfelton/taskboard-api/internal/store"
)

// UserService provides account operations.
type UserService interface {
	// Register creates a new user with the given credentials. Exactly one
	// user row is created on success, none on failure; the whole operation
	// runs in a single transaction.
	// Returns store.ErrUsernameExists / store.ErrEmailExists on conflicts and
	// domain validation errors on invalid input.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)

	// GetUser retrieves a user by their ID.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// GetUserByEmail retrieves a user by their email address.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userStore store.UserStore, db *sql.DB, log *slog.Logger) *UserServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    log.With("component", "user_service"),
	}
}

var _ UserService = (*UserServiceImpl)(nil)

// Register creates a new user inside a transaction.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	username, email, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(username, email, password)
	if err != nil {
		s.logger.Debug("invalid registration input",
			"error", err,
			"username", username)
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})

	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("registration conflict",
				"error", err,
				"username", username)
			return nil, err
		}
		s.logger.Error("failed to register user",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// GetUser retrieves a user by their ID.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", userID)
			return nil, err
		}
		s.logger.Error("failed to retrieve user",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found by email")
			return nil, err
		}
		s.logger.Error("failed to retrieve user by email", "error", err)
		return nil, fmt.Errorf("failed to retrieve user by email: %w", err)
	}

	return user, nil
}
