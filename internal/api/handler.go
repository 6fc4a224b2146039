package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dsa-tracker/backend/internal/domain/question"
	"github.com/dsa-tracker/backend/internal/store"
)

// Store is what the handlers need from the catalog store.
type Store interface {
	List(ctx context.Context, q store.ListQuery) ([]question.Question, int64, error)
	GetByID(ctx context.Context, id string) (*question.Question, error)
	ToggleCompleted(ctx context.Context, id string) (bool, error)
	ToggleReview(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (*question.StatsSnapshot, error)
}

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store   Store
	logger  *slog.Logger
	devMode bool
}

// NewHandler creates a Handler with the given dependencies. devMode controls
// whether error detail is included in 500 responses.
func NewHandler(s Store, logger *slog.Logger, devMode bool) *Handler {
	return &Handler{
		store:   s,
		logger:  logger,
		devMode: devMode,
	}
}

// envelope is the uniform response wrapper: every endpoint answers
// {success, data?, message?, error?}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, envelope{Success: true, Data: data})
}

// respondError writes a failure envelope. The underlying error is attached
// only in development mode.
func (h *Handler) respondError(w http.ResponseWriter, status int, message string, err error) {
	e := envelope{Success: false, Message: message}
	if err != nil && h.devMode {
		e.Error = err.Error()
	}
	respondJSON(w, status, e)
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, message string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, "Question not found", nil)
		return true
	}
	h.logger.Error("store error", "error", err)
	h.respondError(w, http.StatusInternalServerError, message, err)
	return true
}
