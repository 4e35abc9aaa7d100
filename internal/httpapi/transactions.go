package httpapi

import (
	"net/http"

	"github.com/mmynk/profitshare/internal/wire"
	"github.com/mmynk/profitshare/pkg/api"
)

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.ledger.ListTransactions(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch transactions")
		return
	}
	writeJSON(w, http.StatusOK, wire.Transactions(txs))
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	tx, err := h.ledger.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to fetch transaction")
		return
	}
	writeJSON(w, http.StatusOK, wire.Transaction(*tx))
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req api.CreateTransactionRequest
	if !decode(w, r, &req) {
		return
	}
	tx, err := wire.NewTransaction(h.ledger, &req)
	if err == nil {
		err = h.ledger.CreateTransaction(r.Context(), tx)
	}
	if err != nil {
		writeError(w, r, err, "Failed to create transaction")
		return
	}
	writeJSON(w, http.StatusCreated, wire.Transaction(*tx))
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req api.UpdateTransactionRequest
	if !decode(w, r, &req) {
		return
	}
	upd, err := wire.TransactionUpdate(h.ledger, &req)
	if err != nil {
		writeError(w, r, err, "Failed to update transaction")
		return
	}
	tx, err := h.ledger.UpdateTransaction(r.Context(), id, upd)
	if err != nil {
		writeError(w, r, err, "Failed to update transaction")
		return
	}
	writeJSON(w, http.StatusOK, wire.Transaction(*tx))
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.ledger.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, r, err, "Failed to delete transaction")
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
