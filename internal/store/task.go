package store

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/taskwell/taskwell-api/internal/domain"
)

// StatusAll is the ListParams.Status value that disables status filtering.
// An empty status means the same thing.
const StatusAll = "all"

// DefaultListLimit is the page size used when the caller does not supply one.
const DefaultListLimit = 10

// ListParams describes a paginated, filtered task listing request.
type ListParams struct {
	// Page is 1-based. Values below 1 are clamped to 1 by Normalize.
	Page int
	// Limit is the page size. Values below 1 become DefaultListLimit.
	Limit int
	// Search is a case-insensitive substring matched against title and
	// description. Empty means no text filter.
	Search string
	// Status restricts results to one status. Empty or StatusAll means no
	// status filter.
	Status string
}

// Normalize returns a copy of p with page and limit clamped to sane values
// and the search/status trimmed. Out-of-range pagination input is clamped
// rather than rejected, so every ListParams is servable.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultListLimit
	}
	p.Search = strings.TrimSpace(p.Search)
	p.Status = strings.TrimSpace(p.Status)
	return p
}

// Offset returns the number of rows to skip for the requested page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// HasStatusFilter reports whether the params restrict by status.
func (p ListParams) HasStatusFilter() bool {
	return p.Status != "" && p.Status != StatusAll
}

// TaskStore defines the interface for task data persistence. Every read,
// update, and delete is scoped to the owning user in a single query; a task
// that exists but belongs to someone else behaves exactly like a task that
// does not exist.
type TaskStore interface {
	// Create saves a new task to the store.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves the task with the given ID owned by userID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)

	// List returns one page of the user's tasks matching params, ordered by
	// creation time descending, plus the total number of matching tasks.
	// A page past the end of the result set returns an empty slice, not an
	// error.
	List(ctx context.Context, userID uuid.UUID, params ListParams) ([]*domain.Task, int, error)

	// Update persists the task's title, description, status, and updated_at,
	// matching on both task ID and owner.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID owned by userID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
