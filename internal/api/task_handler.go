package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rfelton/taskboard-api/internal/api/shared"
	"github.com/rfelton/taskboard-api/internal/platform/logger"
	"github.com/rfelton/taskboard-api/internal/redact"
	"github.com/rfelton/taskboard-api/internal/service"
	"github.com/rfelton/taskboard-api/internal/store"
)

// jsonNull is the literal an explicit null arrives as in a RawMessage field.
var jsonNull = []byte("null")

// TaskHandler handles the task resource endpoints. Every operation reads the
// caller's identity from the request context (set by the auth middleware)
// and threads it down as an explicit parameter; the service and store layers
// scope all access to that identity.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      log.With(slog.String("component", "task_handler")),
	}
}

// List handles GET /tasks requests.
// Recognized query parameters: completed (bool), due_date (YYYY-MM-DD) and
// search (substring over title and description); they combine conjunctively.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	callerID, ok := callerFromContext(w, r, log)
	if !ok {
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := h.taskService.List(r.Context(), callerID, filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to list tasks", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// Create handles POST /tasks requests. The new task's owner is always the
// caller; the request payload has no say in it.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	callerID, ok := callerFromContext(w, r, log)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Debug("task validation failed",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", callerID.String()))
		shared.RespondWithValidationError(w, r, err)
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid due_date format, expected YYYY-MM-DD")
		return
	}

	task, err := h.taskService.Create(r.Context(), callerID, req.Title, req.Description, dueDate)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// Get handles GET /tasks/{id} requests.
// A task that exists but belongs to another user yields the same 404 as a
// task that does not exist at all.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	callerID, ok := callerFromContext(w, r, log)
	if !ok {
		return
	}

	taskID, ok := taskIDFromPath(w, r, log)
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), callerID, taskID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Update handles PUT /tasks/{id} requests, replacing all mutable fields.
// The owner is immutable.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	callerID, ok := callerFromContext(w, r, log)
	if !ok {
		return
	}

	taskID, ok := taskIDFromPath(w, r, log)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, err)
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid due_date format, expected YYYY-MM-DD")
		return
	}

	task, err := h.taskService.Replace(
		r.Context(), callerID, taskID,
		req.Title, req.Description, dueDate, req.Completed,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Patch handles PATCH /tasks/{id} requests, changing only supplied fields.
func (h *TaskHandler) Patch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	callerID, ok := callerFromContext(w, r, log)
	if !ok {
		return
	}

	taskID, ok := taskIDFromPath(w, r, log)
	if !ok {
		return
	}

	var req PatchTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, err)
		return
	}

	patch := service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	if len(req.DueDate) > 0 {
		patch.DueDateSet = true
		if !bytes.Equal(req.DueDate, jsonNull) {
			var raw string
			if err := json.Unmarshal(req.DueDate, &raw); err != nil {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid due_date format, expected YYYY-MM-DD")
				return
			}
			parsed, err := time.Parse(dueDateLayout, raw)
			if err != nil {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid due_date format, expected YYYY-MM-DD")
				return
			}
			parsed = parsed.UTC()
			patch.DueDate = &parsed
		}
	}

	task, err := h.taskService.Patch(r.Context(), callerID, taskID, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Delete handles DELETE /tasks/{id} requests. Deleting an absent or
// non-owned task is a 404, on the first attempt and every one after.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	callerID, ok := callerFromContext(w, r, log)
	if !ok {
		return
	}

	taskID, ok := taskIDFromPath(w, r, log)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), callerID, taskID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// callerFromContext extracts the authenticated caller's ID, responding 401
// if the auth middleware did not run or produced nothing usable.
func callerFromContext(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
) (uuid.UUID, bool) {
	callerID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || callerID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return uuid.Nil, false
	}
	return callerID, true
}

// taskIDFromPath extracts and parses the {id} path parameter.
func taskIDFromPath(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
) (uuid.UUID, bool) {
	pathID := chi.URLParam(r, "id")
	if pathID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task ID is required")
		return uuid.Nil, false
	}

	taskID, err := uuid.Parse(pathID)
	if err != nil {
		log.Debug("invalid task ID format", slog.String("task_id", pathID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return uuid.Nil, false
	}

	return taskID, true
}

// filterFromQuery builds a TaskFilter from the recognized query parameters.
func filterFromQuery(r *http.Request) (store.TaskFilter, error) {
	var filter store.TaskFilter
	q := r.URL.Query()

	if raw := q.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errBadQueryParam("completed must be a boolean")
		}
		filter.Completed = &completed
	}

	if raw := q.Get("due_date"); raw != "" {
		dueDate, err := time.Parse(dueDateLayout, raw)
		if err != nil {
			return filter, errBadQueryParam("due_date must be formatted as YYYY-MM-DD")
		}
		dueDate = dueDate.UTC()
		filter.DueDate = &dueDate
	}

	filter.Search = q.Get("search")

	return filter, nil
}

type errBadQueryParam string

func (e errBadQueryParam) Error() string { return string(e) }
