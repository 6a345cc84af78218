package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token's nbf claim is in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")
)
