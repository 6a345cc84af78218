// Package middleware provides the HTTP middleware chain: authentication,
// trace IDs, and rate limiting.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/redact"
	"github.com/taskwell/taskwell-api/internal/service/auth"
	"github.com/taskwell/taskwell-api/internal/store"
)

// AuthMiddleware is the bearer-token gate in front of every protected route.
// It validates the token and resolves the encoded user ID to a live user
// record; a token whose user no longer exists is rejected the same way as an
// invalid one.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates an AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates the Authorization header and attaches the resolved
// user to the request context. Any failure short-circuits with 401 before
// the handler runs.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if store.IsNotFoundError(err) {
				// Valid signature but the account is gone.
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}
			slog.Error("failed to resolve token user", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserContextKey, user)
		ctx = context.WithValue(ctx, shared.UserIDContextKey, user.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the authenticated user from the request context.
func GetUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	return user, ok
}

// GetUserID extracts the authenticated user's ID from the request context.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
