package httpapi

import (
	"net/http"

	"github.com/mmynk/profitshare/internal/wire"
	"github.com/mmynk/profitshare/pkg/api"
)

// stakeholderWithPayments is the GET /api/stakeholders/{id} body.
type stakeholderWithPayments struct {
	api.Stakeholder
	Payments []api.Payment `json:"payments"`
}

func (h *Handler) listStakeholders(w http.ResponseWriter, r *http.Request) {
	stakeholders, err := h.ledger.ListStakeholders(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch stakeholders")
		return
	}
	writeJSON(w, http.StatusOK, wire.Stakeholders(stakeholders))
}

func (h *Handler) getStakeholder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	detail, err := h.ledger.GetStakeholder(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to fetch stakeholder")
		return
	}
	writeJSON(w, http.StatusOK, stakeholderWithPayments{
		Stakeholder: wire.Stakeholder(detail.Stakeholder),
		Payments:    wire.Payments(detail.Payments),
	})
}

func (h *Handler) createStakeholder(w http.ResponseWriter, r *http.Request) {
	var req api.CreateStakeholderRequest
	if !decode(w, r, &req) {
		return
	}
	sh := wire.NewStakeholder(&req)
	if err := h.ledger.CreateStakeholder(r.Context(), sh); err != nil {
		writeError(w, r, err, "Failed to create stakeholder")
		return
	}
	writeJSON(w, http.StatusCreated, wire.Stakeholder(*sh))
}

func (h *Handler) updateStakeholder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req api.UpdateStakeholderRequest
	if !decode(w, r, &req) {
		return
	}
	sh, err := h.ledger.UpdateStakeholder(r.Context(), id, wire.StakeholderUpdate(&req))
	if err != nil {
		writeError(w, r, err, "Failed to update stakeholder")
		return
	}
	writeJSON(w, http.StatusOK, wire.Stakeholder(*sh))
}

func (h *Handler) deleteStakeholder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.ledger.DeleteStakeholder(r.Context(), id); err != nil {
		writeError(w, r, err, "Failed to delete stakeholder")
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
