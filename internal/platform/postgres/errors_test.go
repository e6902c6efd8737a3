package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rfelton/taskboard-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockResult implements sql.Result for testing
type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (m mockResult) RowsAffected() (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.rowsAffected, nil
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		expectedError error
	}{
		{
			name: "nil error",
			err:  nil,
		},
		{
			name:          "sql no rows",
			err:           sql.ErrNoRows,
			expectedError: store.ErrNotFound,
		},
		{
			name: "unique violation",
			err: &pgconn.PgError{
				Code:           uniqueViolationCode,
				ConstraintName: "users_email_key",
			},
			expectedError: store.ErrDuplicate,
		},
		{
			name: "foreign key violation",
			err: &pgconn.PgError{
				Code:           foreignKeyViolationCode,
				ConstraintName: "tasks_user_id_fkey",
			},
			expectedError: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mapped := MapError(tt.err)

			if tt.err == nil {
				assert.NoError(t, mapped)
				return
			}
			if tt.expectedError != nil {
				assert.ErrorIs(t, mapped, tt.expectedError)
			} else {
				assert.Equal(t, tt.err, mapped)
			}
		})
	}

	t.Run("unrecognized errors pass through", func(t *testing.T) {
		t.Parallel()
		err := errors.New("connection refused")
		assert.Equal(t, err, MapError(err))
	})

	t.Run("wrapped pg errors are still recognized", func(t *testing.T) {
		t.Parallel()
		pgErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_username_key"}
		wrapped := fmt.Errorf("failed to insert: %w", pgErr)

		assert.ErrorIs(t, MapError(wrapped), store.ErrDuplicate)
		assert.True(t, IsUniqueViolation(wrapped))
		assert.Equal(t, "users_username_key", ConstraintName(wrapped))
	})
}

func TestIsViolationHelpers(t *testing.T) {
	t.Parallel()

	uniqueErr := &pgconn.PgError{Code: uniqueViolationCode}
	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}

	assert.True(t, IsUniqueViolation(uniqueErr))
	assert.False(t, IsUniqueViolation(fkErr))
	assert.False(t, IsUniqueViolation(errors.New("other")))

	assert.True(t, IsForeignKeyViolation(fkErr))
	assert.False(t, IsForeignKeyViolation(uniqueErr))

	assert.Empty(t, ConstraintName(errors.New("other")))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	notFound := store.ErrTaskNotFound

	t.Run("rows affected", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, CheckRowsAffected(mockResult{rowsAffected: 1}, notFound))
	})

	t.Run("zero rows becomes not found", func(t *testing.T) {
		t.Parallel()
		err := CheckRowsAffected(mockResult{rowsAffected: 0}, notFound)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("rows affected error propagates", func(t *testing.T) {
		t.Parallel()
		resultErr := errors.New("driver does not support RowsAffected")
		err := CheckRowsAffected(mockResult{err: resultErr}, notFound)
		require.Error(t, err)
		assert.ErrorIs(t, err, resultErr)
	})

	t.Run("nil result", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, CheckRowsAffected(nil, notFound))
	})
}
