package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taskwell/taskwell-api/internal/api/middleware"
	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/redact"
	"github.com/taskwell/taskwell-api/internal/service/auth"
	"github.com/taskwell/taskwell-api/internal/store"
)

// AuthHandler handles the authentication endpoints.
type AuthHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	validator  *validator.Validate
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
		validator:  validator.New(),
	}
}

// formatValidationError turns a validator field error into the same plain
// phrasing the domain validation errors use. The raw validator message
// carries Go struct paths and never reaches the client.
func formatValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request"
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+formatValidationError(err))
		return
	}

	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	hashed, err := h.hasher.Hash(user.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email already registered")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Token: token,
		User:  NewUserResponse(user),
	})
}

// Login handles POST /api/auth/login. Unknown emails and wrong passwords
// produce the same response so accounts cannot be enumerated.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+formatValidationError(err))
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), domain.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Token: token,
		User:  NewUserResponse(user),
	})
}

// Me handles GET /api/auth/me. The auth middleware has already resolved the
// token to a live user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MeResponse{User: NewUserResponse(user)})
}
