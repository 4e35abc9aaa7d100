// Package httpapi serves the ledger as a JSON REST API under /api.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mmynk/profitshare/internal/calculator"
	"github.com/mmynk/profitshare/internal/ledger"
	"github.com/mmynk/profitshare/internal/middleware"
	"github.com/mmynk/profitshare/internal/storage"
)

const hasPaymentsMessage = "Cannot delete stakeholder with payments. Deactivate instead."

// Handler exposes a Ledger over HTTP.
type Handler struct {
	ledger *ledger.Ledger
}

// NewRouter builds the /api routes. Extra middlewares run inside the
// request id, logging and recovery middlewares, so they can use the request
// id and their panics are recovered.
func NewRouter(l *ledger.Ledger, middlewares ...func(http.Handler) http.Handler) chi.Router {
	h := &Handler{ledger: l}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(middlewares...)

	r.Route("/api", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.listTransactions)
			r.Post("/", h.createTransaction)
			r.Get("/{id}", h.getTransaction)
			r.Patch("/{id}", h.updateTransaction)
			r.Delete("/{id}", h.deleteTransaction)
		})
		r.Route("/stakeholders", func(r chi.Router) {
			r.Get("/", h.listStakeholders)
			r.Post("/", h.createStakeholder)
			r.Get("/{id}", h.getStakeholder)
			r.Patch("/{id}", h.updateStakeholder)
			r.Delete("/{id}", h.deleteStakeholder)
		})
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.listPayments)
			r.Post("/", h.recordPayment)
			r.Get("/{id}", h.getPayment)
			r.Patch("/{id}", h.updatePayment)
			r.Delete("/{id}", h.deletePayment)
		})
		r.Get("/summary", h.summary)
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps err onto a status code. Server-side failures are logged
// and reported with the generic fallback message.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrConflict):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrHasPayments):
		writeMessage(w, http.StatusBadRequest, hasPaymentsMessage)
	case errors.Is(err, calculator.ErrNoActiveStakeholders):
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, storage.ErrTransient):
		slog.Warn(fallback, "request_id", chimw.GetReqID(r.Context()), "error", err)
		writeMessage(w, http.StatusServiceUnavailable, err.Error())
	default:
		slog.Error(fallback, "request_id", chimw.GetReqID(r.Context()), "error", err)
		writeMessage(w, http.StatusInternalServerError, fallback)
	}
}

// pathID parses the {id} URL parameter, writing a 400 when it is not a
// number.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid ID format")
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
