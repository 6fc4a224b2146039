package api

import (
	"net/http"

	"github.com/dsa-tracker/backend/internal/domain/question"
	"github.com/dsa-tracker/backend/internal/store"
)

// ── Response types ──────────────────────────────────────────────────────────

type ListQuestionsResponse struct {
	Questions []question.Question `json:"questions"`
	question.Page
}

type ToggleResponse struct {
	ID        string `json:"id"`
	Completed *bool  `json:"completed,omitempty"`
	Review    *bool  `json:"review,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listQuestions lists catalog questions.
// @Summary      List questions
// @Description  List, search, filter and paginate the question catalog.
// @Tags         Questions
// @Produce      json
// @Param        page        query  int     false  "page number (default 1)"
// @Param        limit       query  int     false  "page size (default 10, max 100)"
// @Param        search      query  string  false  "case-insensitive substring over titles"
// @Param        step_no     query  int     false  "filter by step number"
// @Param        difficulty  query  int     false  "filter by difficulty (0..2)"
// @Param        completed   query  string  false  "filter by completed flag"
// @Param        review      query  string  false  "filter by review flag"
// @Param        sort        query  string  false  "comma-separated fields, '-' prefix for descending"
// @Success      200  {object}  ListQuestionsResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	q := store.ParseListQuery(r.URL.Query())

	questions, total, err := h.store.List(r.Context(), q)
	if h.handleStoreError(w, err, "Failed to fetch questions") {
		return
	}

	respondData(w, http.StatusOK, ListQuestionsResponse{
		Questions: questions,
		Page:      question.NewPage(q.Page, q.Limit, total),
	})
}

// getQuestion fetches a single question.
// @Summary      Get a question
// @Description  Fetch one question by its business id.
// @Tags         Questions
// @Produce      json
// @Param        id   path      string  true  "question id"
// @Success      200  {object}  question.Question
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/questions/{id} [get]
func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	q, err := h.store.GetByID(r.Context(), id)
	if h.handleStoreError(w, err, "Failed to fetch question") {
		return
	}

	respondData(w, http.StatusOK, q)
}

// toggleCompleted flips a question's completed flag.
// @Summary      Toggle completed
// @Description  Flip the completed flag and return the new value.
// @Tags         Questions
// @Produce      json
// @Param        id   path      string  true  "question id"
// @Success      200  {object}  ToggleResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/questions/{id}/completed [put]
func (h *Handler) toggleCompleted(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	completed, err := h.store.ToggleCompleted(r.Context(), id)
	if h.handleStoreError(w, err, "Failed to update question") {
		return
	}

	respondData(w, http.StatusOK, ToggleResponse{ID: id, Completed: &completed})
}

// toggleReview flips a question's review flag.
// @Summary      Toggle review
// @Description  Flip the review flag and return the new value.
// @Tags         Questions
// @Produce      json
// @Param        id   path      string  true  "question id"
// @Success      200  {object}  ToggleResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/questions/{id}/review [put]
func (h *Handler) toggleReview(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	review, err := h.store.ToggleReview(r.Context(), id)
	if h.handleStoreError(w, err, "Failed to update question") {
		return
	}

	respondData(w, http.StatusOK, ToggleResponse{ID: id, Review: &review})
}
