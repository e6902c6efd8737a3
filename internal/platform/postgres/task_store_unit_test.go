package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/rfelton/taskboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostgresTaskStore(t *testing.T) {
	t.Parallel()

	s := NewPostgresTaskStore(nil, nil)
	require.NotNil(t, s)
	assert.NotNil(t, s.logger)
}

func TestTaskStoreWithTx(t *testing.T) {
	t.Parallel()

	base := NewPostgresTaskStore(nil, nil)

	var tx *sql.Tx
	bound := base.WithTx(tx)

	boundStore, ok := bound.(*PostgresTaskStore)
	require.True(t, ok)
	assert.NotSame(t, base, boundStore)
}

func TestTaskStoreValidatesBeforeTouchingDatabase(t *testing.T) {
	t.Parallel()

	s := NewPostgresTaskStore(nil, nil)
	ctx := context.Background()

	t.Run("create rejects missing title", func(t *testing.T) {
		t.Parallel()
		task := &domain.Task{
			ID:     uuid.New(),
			UserID: uuid.New(),
		}
		assert.ErrorIs(t, s.Create(ctx, task), domain.ErrTaskTitleEmpty)
	})

	t.Run("create rejects missing owner", func(t *testing.T) {
		t.Parallel()
		task := &domain.Task{
			ID:    uuid.New(),
			Title: "Valid title",
		}
		assert.ErrorIs(t, s.Create(ctx, task), domain.ErrTaskUserIDEmpty)
	})

	t.Run("update rejects invalid task", func(t *testing.T) {
		t.Parallel()
		task := &domain.Task{
			ID:     uuid.New(),
			UserID: uuid.New(),
		}
		assert.ErrorIs(t, s.Update(ctx, uuid.New(), task), domain.ErrTaskTitleEmpty)
	})
}
