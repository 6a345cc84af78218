// Package auth provides session token issuing/validation and password
// hashing for the API.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing session tokens.
type JWTService interface {
	// GenerateToken creates a signed session token for the given user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies the token's signature and expiry and extracts
	// its claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded content of a valid session token.
type Claims struct {
	// UserID is the user the token was issued for.
	UserID uuid.UUID

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
