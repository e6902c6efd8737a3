package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rfelton/taskboard-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret      = "test-secret-that-is-long-enough-for-testing"
	testWrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

// newFixedTimeService builds a service whose clock is pinned to the given
// time, for predictable expiry behavior.
func newFixedTimeService(secret string, lifetime time.Duration, at time.Time) *hmacJWTService {
	return &hmacJWTService{
		signingKey:           []byte(secret),
		tokenLifetime:        lifetime,
		refreshTokenLifetime: 24 * time.Hour,
		timeFunc:             func() time.Time { return at },
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{
		JWTSecret:                   "too-short",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
	})
	assert.Error(t, err, "short secrets must be rejected")

	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:                   testSecret,
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
	})
	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := uuid.New()

	svc := newFixedTimeService(testSecret, tokenLifetime, fixedTime)

	t.Run("generates valid token", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, userID.String(), claims.Subject)
		// Compare Unix timestamps to avoid timezone issues
		assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix())
		assert.NotEmpty(t, claims.ID)
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := uuid.New()

	tests := []struct {
		name      string
		setupFunc func() (*hmacJWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (*hmacJWTService, string) {
				svc := newFixedTimeService(testSecret, tokenLifetime, fixedTime)
				token, _ := svc.GenerateToken(context.Background(), userID)
				return svc, token
			},
			wantErr: nil,
		},
		{
			name: "expired token",
			setupFunc: func() (*hmacJWTService, string) {
				genSvc := newFixedTimeService(testSecret, tokenLifetime, fixedTime)
				token, _ := genSvc.GenerateToken(context.Background(), userID)

				// Validate well past expiry, beyond the clock skew allowance
				valSvc := newFixedTimeService(testSecret, tokenLifetime,
					fixedTime.Add(tokenLifetime+time.Hour))
				return valSvc, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "invalid signature",
			setupFunc: func() (*hmacJWTService, string) {
				genSvc := newFixedTimeService(testSecret, tokenLifetime, fixedTime)
				token, _ := genSvc.GenerateToken(context.Background(), userID)

				valSvc := newFixedTimeService(testWrongSecret, tokenLifetime, fixedTime)
				return valSvc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (*hmacJWTService, string) {
				svc := newFixedTimeService(testSecret, tokenLifetime, fixedTime)
				return svc, "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "refresh token rejected by access validation",
			setupFunc: func() (*hmacJWTService, string) {
				svc := newFixedTimeService(testSecret, tokenLifetime, fixedTime)
				token, _ := svc.GenerateRefreshToken(context.Background(), userID)
				return svc, token
			},
			wantErr: ErrWrongTokenType,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc()

			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, userID, claims.UserID)
			}
		})
	}
}

func TestValidateRefreshToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		svc := newFixedTimeService(testSecret, time.Hour, fixedTime)

		token, err := svc.GenerateRefreshToken(context.Background(), userID)
		require.NoError(t, err)

		claims, err := svc.ValidateRefreshToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "refresh", claims.TokenType)
	})

	t.Run("access token rejected", func(t *testing.T) {
		t.Parallel()
		svc := newFixedTimeService(testSecret, time.Hour, fixedTime)

		token, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		_, err = svc.ValidateRefreshToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		t.Parallel()
		genSvc := newFixedTimeService(testSecret, time.Hour, fixedTime)
		token, err := genSvc.GenerateRefreshToken(context.Background(), userID)
		require.NoError(t, err)

		valSvc := newFixedTimeService(testSecret, time.Hour,
			fixedTime.Add(25*time.Hour))
		_, err = valSvc.ValidateRefreshToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrExpiredRefreshToken)
	})
}

func TestClockSkewTolerance(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := uuid.New()

	genSvc := newFixedTimeService(testSecret, tokenLifetime, fixedTime)
	genSvc.clockSkew = 2 * time.Minute
	token, err := genSvc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	// One minute past expiry is still within the two-minute leeway.
	valSvc := newFixedTimeService(testSecret, tokenLifetime,
		fixedTime.Add(tokenLifetime+time.Minute))
	valSvc.clockSkew = 2 * time.Minute

	claims, err := valSvc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}
