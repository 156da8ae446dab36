package handlers

import (
	"net/http"

	"iq-home/quotes_backend/internal/logger"
)

// ListQuotes and ListForms expose the raw snapshots backing the
// dashboard, in storage order (newest first).

func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, _, err := h.Feed.Snapshot(r.Context())
	if err != nil {
		h.Log.Error("list quotes", logger.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, quotes)
}

func (h *Handlers) ListForms(w http.ResponseWriter, r *http.Request) {
	_, forms, err := h.Feed.Snapshot(r.Context())
	if err != nil {
		h.Log.Error("list forms", logger.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, forms)
}
