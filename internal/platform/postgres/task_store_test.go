package postgres_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/platform/postgres"
	"github.com/taskwell/taskwell-api/internal/store"
)

const taskCols = "id, user_id, title, description, status, created_at, updated_at"

func newTaskRows(tasks ...*domain.Task) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "title", "description", "status", "created_at", "updated_at",
	})
	for _, task := range tasks {
		rows.AddRow(
			task.ID.String(),
			task.UserID.String(),
			task.Title,
			task.Description,
			string(task.Status),
			task.CreatedAt,
			task.UpdatedAt,
		)
	}
	return rows
}

func mustNewTask(t *testing.T, userID uuid.UUID, title string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(userID, title, "", domain.TaskStatusPending)
	require.NoError(t, err)
	return task
}

func TestTaskStore_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := postgres.NewTaskStore(db, nil)
	task := mustNewTask(t, uuid.New(), "Buy milk")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tasks")).
		WithArgs(
			task.ID, task.UserID, task.Title, task.Description,
			string(task.Status), task.CreatedAt, task.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, taskStore.Create(context.Background(), task))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_Create_InvalidTask(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := postgres.NewTaskStore(db, nil)
	task := mustNewTask(t, uuid.New(), "Buy milk")
	task.Title = ""

	// Validation fails before any SQL runs.
	err = taskStore.Create(context.Background(), task)
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := postgres.NewTaskStore(db, nil)
	task := mustNewTask(t, uuid.New(), "Buy milk")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2")).
		WithArgs(task.ID, task.UserID).
		WillReturnRows(newTaskRows(task))

	got, err := taskStore.GetByID(context.Background(), task.ID, task.UserID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, task.Title, got.Title)
	assert.Equal(t, domain.TaskStatusPending, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := postgres.NewTaskStore(db, nil)
	taskID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2")).
		WithArgs(taskID, userID).
		WillReturnRows(newTaskRows())

	_, err = taskStore.GetByID(context.Background(), taskID, userID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := postgres.NewTaskStore(db, nil)
	userID := uuid.New()
	first := mustNewTask(t, userID, "Buy milk")
	second := mustNewTask(t, userID, "Buy bread")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tasks WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT "+taskCols+" FROM tasks WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3",
	)).
		WithArgs(userID, 10, 0).
		WillReturnRows(newTaskRows(first, second))

	tasks, total, err := taskStore.List(context.Background(), userID, store.ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_List_SearchAndStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := postgres.NewTaskStore(db, nil)
	userID := uuid.New()
	match := mustNewTask(t, userID, "Buy milk")
	match.Status = domain.TaskStatusDone

	filter := "user_id = $1 AND (title ILIKE $2 OR description ILIKE $2) AND status = $3"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tasks WHERE "+filter)).
		WithArgs(userID, "%milk%", "done").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT "+taskCols+" FROM tasks WHERE "+filter+" ORDER BY created_at DESC, id DESC LIMIT $4 OFFSET $5",
	)).
		WithArgs(userID, "%milk%", "done", 10, 0).
		WillReturnRows(newTaskRows(match))

	tasks, total, err := taskStore.List(context.Background(), userID, store.ListParams{
		Page:   1,
		Limit:  10,
		Search: "milk",
		Status: "done",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_List_EscapesLikeInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := postgres.NewTaskStore(db, nil)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(userID, `%100\%\_done%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs(userID, `%100\%\_done%`, 10, 0).
		WillReturnRows(newTaskRows())

	tasks, total, err := taskStore.List(context.Background(), userID, store.ListParams{
		Page:   1,
		Limit:  10,
		Search: "100%_done",
	})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, tasks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := postgres.NewTaskStore(db, nil)
	task := mustNewTask(t, uuid.New(), "Buy milk")

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks")).
		WithArgs(
			task.Title, task.Description, string(task.Status), task.UpdatedAt,
			task.ID, task.UserID,
		).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = taskStore.Update(context.Background(), task)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := postgres.NewTaskStore(db, nil)
	taskID, userID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tasks WHERE id = $1 AND user_id = $2")).
		WithArgs(taskID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, taskStore.Delete(context.Background(), taskID, userID))

	// Deleting again finds nothing.
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tasks WHERE id = $1 AND user_id = $2")).
		WithArgs(taskID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = taskStore.Delete(context.Background(), taskID, userID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskStore_List_ClampsInvalidPagination(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	taskStore := postgres.NewTaskStore(db, nil)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
		WithArgs(userID, store.DefaultListLimit, 0).
		WillReturnRows(newTaskRows())

	_, _, err = taskStore.List(context.Background(), userID, store.ListParams{Page: -5, Limit: 0})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
