package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskwell/taskwell-api/internal/api/middleware"
	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
	"github.com/taskwell/taskwell-api/internal/store"
)

// TaskHandler handles the task CRUD and listing endpoints. Every operation
// is scoped to the authenticated user; a task owned by someone else is
// answered exactly like a missing one.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    log.With(slog.String("component", "task_handler")),
	}
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	params, ok := parseListParams(w, r)
	if !ok {
		return
	}

	tasks, total, err := h.taskStore.List(r.Context(), userID, params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	params = params.Normalize()
	log.Debug("tasks listed",
		slog.String("user_id", userID.String()),
		slog.Int("page", params.Page),
		slog.Int("returned", len(tasks)),
		slog.Int("total", total))

	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{
		Tasks:      tasks,
		Pagination: NewPagination(params.Page, params.Limit, len(tasks), total),
	})
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), taskID, userID)
	if err != nil {
		respondTaskError(w, r, err, "Failed to get task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := domain.NewTask(userID, req.Title, req.Description, domain.TaskStatus(req.Status))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", userID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// Update handles PUT /api/tasks/{id}. Only the supplied fields change;
// anything left out of the body keeps its current value.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), taskID, userID)
	if err != nil {
		respondTaskError(w, r, err, "Failed to update task")
		return
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		task.Description = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	task.UpdatedAt = time.Now().UTC()

	if err := task.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		respondTaskError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), taskID, userID); err != nil {
		respondTaskError(w, r, err, "Failed to delete task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}

// parseTaskID extracts and parses the task ID from the URL. A malformed ID
// gets the same 404 as an unknown one, so the response never reveals
// whether an ID is syntactically plausible.
func parseTaskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	taskID, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return uuid.Nil, false
	}
	return taskID, true
}

// parseListParams reads the listing query parameters, responding with 400
// for unparsable numbers or an unknown status value. Out-of-range page and
// limit values are clamped by the store, not rejected.
func parseListParams(w http.ResponseWriter, r *http.Request) (store.ListParams, bool) {
	query := r.URL.Query()
	params := store.ListParams{
		Search: query.Get("search"),
		Status: query.Get("status"),
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid page parameter")
			return store.ListParams{}, false
		}
		params.Page = page
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return store.ListParams{}, false
		}
		params.Limit = limit
	}

	if params.Status != "" && params.Status != store.StatusAll &&
		!domain.TaskStatus(params.Status).IsValid() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status parameter")
		return store.ListParams{}, false
	}

	return params, true
}

// respondTaskError maps store errors for single-task operations, keeping
// the uniform not-found response for absent and not-owned tasks alike.
func respondTaskError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusInternalServerError {
		shared.RespondWithErrorAndLog(w, r, status, fallback, err)
		return
	}
	shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
}
