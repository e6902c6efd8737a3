package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/rfelton/taskboard-api/internal/domain"
	"github.com/rfelton/taskboard-api/internal/service/auth"
	"github.com/rfelton/taskboard-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"nil-ish unknown error", errors.New("boom"), http.StatusInternalServerError},

		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid refresh token", auth.ErrInvalidRefreshToken, http.StatusUnauthorized},
		{"wrong token type", auth.ErrWrongTokenType, http.StatusUnauthorized},

		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrTaskNotFound), http.StatusNotFound},

		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"email exists", store.ErrEmailExists, http.StatusConflict},

		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"empty title", domain.ErrTaskTitleEmpty, http.StatusBadRequest},
		{"title too long", domain.ErrTaskTitleTooLong, http.StatusBadRequest},
		{"short password", domain.ErrPasswordTooShort, http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

// A non-owned task surfaces as store.ErrTaskNotFound at the store layer, so
// there is no error that could ever map to 403.
func TestNoForbiddenMapping(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		store.ErrTaskNotFound,
		store.ErrNotFound,
		fmt.Errorf("scoped query: %w", store.ErrTaskNotFound),
	} {
		assert.NotEqual(t, http.StatusForbidden, MapErrorToStatusCode(err))
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"username exists", store.ErrUsernameExists, "Username already exists"},
		{"email exists", store.ErrEmailExists, "Email already exists"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"invalid refresh", auth.ErrExpiredRefreshToken, "Invalid refresh token"},
		{"domain validation passes through", domain.ErrTaskTitleEmpty, domain.ErrTaskTitleEmpty.Error()},
		{"unknown error is sanitized", errors.New("pq: connection to 10.0.0.5 failed"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}

	t.Run("internal details never leak", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("dial tcp 10.1.2.3:5432: %w", errors.New("connection refused"))
		msg := GetSafeErrorMessage(err)
		assert.NotContains(t, msg, "10.1.2.3")
		assert.NotContains(t, msg, "connection refused")
	})
}
