package httpapi

import (
	"net/http"

	"github.com/mmynk/profitshare/internal/wire"
)

// summary handles GET /api/summary?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD.
// Either bound may be omitted.
func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rng, err := h.ledger.ParseRange(q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeError(w, r, err, "Failed to generate financial summary")
		return
	}

	summary, err := h.ledger.Summary(r.Context(), rng)
	if err != nil {
		writeError(w, r, err, "Failed to generate financial summary")
		return
	}
	writeJSON(w, http.StatusOK, wire.Summary(summary))
}
