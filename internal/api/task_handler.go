package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/parkerross/totodo-api/internal/api/shared"
	"github.com/parkerross/totodo-api/internal/domain"
	"github.com/parkerross/totodo-api/internal/platform/logger"
	"github.com/parkerross/totodo-api/internal/store"
)

// TaskHandler handles task CRUD requests. Tasks are addressed by their
// externally-visible uuid; the store-assigned row ID never appears on the
// wire.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    log.With(slog.String("component", "task_handler")),
	}
}

// Create handles POST /api/tasks. A missing uuid is generated; the created
// task is echoed in full with status "pending" and its creation timestamp.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := domain.NewTask(req.Task, req.Description, req.UUID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task data")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error creating task", err)
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// Creation failures read as bad requests, duplicates included.
		if statusCode == http.StatusInternalServerError {
			statusCode = http.StatusBadRequest
			safeMessage = "Error creating task"
		}

		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Info("task created", slog.String("task_uuid", task.UUID))
	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// List handles GET /api/tasks. All tasks come back unfiltered and
// unpaginated, in store-native order.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error fetching tasks", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Update handles PATCH /api/tasks/{uuid} with merge semantics: only fields
// present in the body change, everything else is preserved.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	externalUUID := chi.URLParam(r, "uuid")
	if externalUUID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task uuid is required")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	patch := &domain.TaskPatch{
		Text:        req.Task,
		Description: req.Description,
		Status:      req.Status,
		CompletedAt: req.CompletedAt,
	}

	task, err := h.taskStore.Update(r.Context(), externalUUID, patch)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// Apart from a missing task, update failures read as bad requests.
		if statusCode == http.StatusInternalServerError {
			statusCode = http.StatusBadRequest
			safeMessage = "Error updating task"
		}

		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Info("task updated", slog.String("task_uuid", externalUUID))
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{uuid}, returning the removed record.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	externalUUID := chi.URLParam(r, "uuid")
	if externalUUID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task uuid is required")
		return
	}

	task, err := h.taskStore.Delete(r.Context(), externalUUID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Error deleting task"
		}

		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Info("task deleted", slog.String("task_uuid", externalUUID))
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}
