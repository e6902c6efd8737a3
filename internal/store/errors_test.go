package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntitySpecificErrorsWrapBaseErrors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrTaskNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrUsernameExists, ErrDuplicate)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)

	// The two not-found errors must stay distinguishable from each other.
	assert.NotErrorIs(t, ErrTaskNotFound, ErrUserNotFound)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("query failed: %w", ErrTaskNotFound)))

	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(errors.New("something else")))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrUsernameExists))
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert failed: %w", ErrEmailExists)))

	assert.False(t, IsDuplicateError(nil))
	assert.False(t, IsDuplicateError(ErrNotFound))
}
