package api

import (
	"net/http"

	"github.com/dsa-tracker/backend/internal/domain/question"
)

// statsOverview reports aggregate catalog progress.
// @Summary      Progress statistics
// @Description  Totals, completion percentage, difficulty and per-step breakdowns over the whole catalog.
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  question.Stats
// @Failure      500  {object}  map[string]string
// @Router       /api/questions/stats/overview [get]
func (h *Handler) statsOverview(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Stats(r.Context())
	if h.handleStoreError(w, err, "Failed to compute statistics") {
		return
	}

	respondData(w, http.StatusOK, question.BuildStats(*snap))
}
