package api

import (
	"errors"
	"net/http"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/store"
)

// MapErrorToStatusCode converts a service or store error into the HTTP
// status the handler should respond with.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	case store.IsDuplicateError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a message safe to expose to the caller.
// Validation messages are domain-authored and safe verbatim; everything
// else collapses to a generic phrase while the full error goes to the logs.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return err.Error()
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"
	case store.IsNotFoundError(err):
		return "Not found"
	default:
		return "Server error"
	}
}
