// Package auth provides authentication services: JWT token issuance and
// validation, and password verification.
package auth

import "errors"

// Token validation errors
var (
	// ErrInvalidToken is returned when an access token is malformed, has an
	// invalid signature or fails validation for any non-expiry reason.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when an access token has expired.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when a token's nbf/iat lies in the future.
	ErrTokenNotYetValid = errors.New("token not yet valid")

	// ErrInvalidRefreshToken is returned when a refresh token fails validation.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrExpiredRefreshToken is returned when a refresh token has expired.
	ErrExpiredRefreshToken = errors.New("refresh token expired")

	// ErrWrongTokenType is returned when an access token is presented where a
	// refresh token is expected or vice versa.
	ErrWrongTokenType = errors.New("wrong token type")
)
