package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskwell/taskwell-api/internal/domain"
)

// RegisterRequest is the payload for the registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a domain user to its public shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// AuthResponse is the successful response for register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse is the successful response for the current-user endpoint.
type MeResponse struct {
	User UserResponse `json:"user"`
}

// CreateTaskRequest is the payload for task creation. Field rules are
// enforced by the domain constructor (title required after trimming, status
// restricted to the two known values).
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateTaskRequest is the payload for partial task updates. Nil fields are
// left unchanged; supplied fields are validated individually.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// Pagination is the metadata block accompanying a task listing.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalTasks  int  `json:"totalTasks"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// NewPagination computes the pagination metadata for one page of results.
// returned is the number of rows actually fetched for this page.
func NewPagination(page, limit, returned, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	skip := (page - 1) * limit
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalTasks:  total,
		HasNext:     skip+returned < total,
		HasPrev:     page > 1,
	}
}

// TaskListResponse is the response for the task listing endpoint.
type TaskListResponse struct {
	Tasks      []*domain.Task `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
