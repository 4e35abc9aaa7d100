package httpapi

import (
	"net/http"

	"github.com/mmynk/profitshare/internal/middleware"
	"github.com/mmynk/profitshare/internal/wire"
	"github.com/mmynk/profitshare/pkg/api"
)

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.ledger.ListPayments(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch payments")
		return
	}
	writeJSON(w, http.StatusOK, wire.PaymentDetails(payments))
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	payment, err := h.ledger.GetPayment(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to fetch payment")
		return
	}
	writeJSON(w, http.StatusOK, wire.PaymentDetail(*payment))
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	var req api.RecordPaymentRequest
	if !decode(w, r, &req) {
		return
	}
	payment, err := wire.NewPayment(h.ledger, &req, middleware.GetUserID(r.Context()))
	if err == nil {
		err = h.ledger.RecordPayment(r.Context(), payment)
	}
	if err != nil {
		writeError(w, r, err, "Failed to create payment")
		return
	}
	writeJSON(w, http.StatusCreated, wire.Payment(*payment))
}

func (h *Handler) updatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req api.UpdatePaymentRequest
	if !decode(w, r, &req) {
		return
	}
	upd, err := wire.PaymentUpdate(h.ledger, &req)
	if err != nil {
		writeError(w, r, err, "Failed to update payment")
		return
	}
	payment, err := h.ledger.UpdatePayment(r.Context(), id, upd)
	if err != nil {
		writeError(w, r, err, "Failed to update payment")
		return
	}
	writeJSON(w, http.StatusOK, wire.Payment(*payment))
}

func (h *Handler) deletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.ledger.DeletePayment(r.Context(), id); err != nil {
		writeError(w, r, err, "Failed to delete payment")
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
