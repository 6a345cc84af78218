package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskwell/taskwell-api/internal/domain"
)

// UserStore defines the interface for user data persistence. Users are
// created at registration and read at login and session validation; they are
// never mutated or deleted in this system.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
