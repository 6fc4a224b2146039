package api

import "net/http"

// RegisterRoutes wires the catalog endpoints onto mux. The literal
// stats/overview pattern wins over the {id} wildcard, so both can coexist
// under /api/questions.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/questions", h.listQuestions)
	mux.HandleFunc("GET /api/questions/{id}", h.getQuestion)
	mux.HandleFunc("PUT /api/questions/{id}/completed", h.toggleCompleted)
	mux.HandleFunc("PUT /api/questions/{id}/review", h.toggleReview)
	mux.HandleFunc("GET /api/questions/stats/overview", h.statsOverview)

	// Everything the patterns above don't match.
	mux.HandleFunc("/", h.notFound)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, http.StatusNotFound, "Route not found", nil)
}
