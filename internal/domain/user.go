package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common user validation errors
var (
	ErrEmptyUserID      = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyEmail       = fmt.Errorf("%w: email is required", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrEmptyPassword    = fmt.Errorf("%w: password is required", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 6 characters long", ErrValidation)
	ErrPasswordTooLong  = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
)

// Password length bounds. The upper bound is bcrypt's practical input limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// User represents a registered account.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, only populated during registration
	HashedPassword string    `json:"-"` // Never exposed in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NormalizeEmail canonicalizes an email address for storage and lookup.
// Every path that touches the users table goes through this, so an address
// registered in mixed case still matches at login.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser creates a User with a fresh ID and timestamps.
// The caller is responsible for hashing the password before storing the user.
func NewUser(email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Email:     NormalizeEmail(email),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the user's fields. A user loaded from the store carries only
// a hashed password; a user being registered carries a plaintext one.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validEmailFormat performs a structural check: a single non-leading,
// non-trailing "@" with a dotted domain part. Anything stricter belongs to
// the mail provider, not this service.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.Contains(email[at+1:], "@") {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
