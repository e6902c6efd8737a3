package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifierCompare(t *testing.T) {
	t.Parallel()

	password := "correct-horse-battery-staple"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	verifier := NewBcryptVerifier()

	assert.NoError(t, verifier.Compare(string(hash), password))
	assert.Error(t, verifier.Compare(string(hash), "wrong-password"))
	assert.Error(t, verifier.Compare("not-a-bcrypt-hash", password))
}
