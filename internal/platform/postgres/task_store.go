package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
	"github.com/taskwell/taskwell-api/internal/store"
)

// taskColumns is the column list shared by every task SELECT.
const taskColumns = "id, user_id, title, description, status, created_at, updated_at"

// TaskStore implements store.TaskStore using a PostgreSQL database.
type TaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTaskStore creates a PostgreSQL implementation of store.TaskStore.
// The db connection is initialized and managed by the caller.
func NewTaskStore(db store.DBTX, log *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &TaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO tasks (id, user_id, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()),
			slog.String("user_id", task.UserID.String()))
		return MapError(err)
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", task.UserID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID. The lookup matches on both
// task ID and owner in a single query, so a task owned by someone else is
// indistinguishable from a missing one.
func (s *TaskStore) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`, taskColumns)

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrTaskNotFound
		}

		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, MapError(err)
	}

	return &task, nil
}

// List implements store.TaskStore.List. It runs one SELECT for the requested
// page and an independent COUNT over the same filter, ordered by creation
// time descending with the ID as a tie-break so pagination is deterministic.
func (s *TaskStore) List(
	ctx context.Context,
	userID uuid.UUID,
	params store.ListParams,
) ([]*domain.Task, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	params = params.Normalize()

	where, args := buildTaskFilter(userID, params)

	countQuery := "SELECT COUNT(*) FROM tasks WHERE " + where
	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, 0, MapError(err)
	}

	listQuery := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		taskColumns,
		where,
		len(args)+1,
		len(args)+2,
	)
	args = append(args, params.Limit, params.Offset())

	rows, err := s.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0, params.Limit)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, 0, MapError(err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return tasks, total, nil
}

// Update implements store.TaskStore.Update, matching on both task ID and
// owner so a non-owner update behaves like a missing task.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Status,
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete, matching on both task ID and
// owner so a non-owner delete behaves like a missing task.
func (s *TaskStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// buildTaskFilter assembles the shared WHERE clause for List and its count.
// The clause always scopes to the owner; search matches title or description
// case-insensitively as a plain substring.
func buildTaskFilter(userID uuid.UUID, params store.ListParams) (string, []any) {
	where := "user_id = $1"
	args := []any{userID}

	if params.Search != "" {
		args = append(args, "%"+escapeLikePattern(params.Search)+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", n, n)
	}

	if params.HasStatusFilter() {
		args = append(args, params.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	return where, args
}

// escapeLikePattern neutralizes LIKE metacharacters in user input so a
// search for "100%" matches literally.
func escapeLikePattern(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
