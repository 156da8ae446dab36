package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"iq-home/quotes_backend/internal/domain/form"
	"iq-home/quotes_backend/internal/domain/quote"
	"iq-home/quotes_backend/internal/logger"
)

// SnapshotSource hands out the latest known quote/form collections.
type SnapshotSource interface {
	Snapshot(ctx context.Context) ([]*quote.Quote, []*form.Form, error)
}

type Handlers struct {
	Feed SnapshotSource
	Log  logger.Logger
}

func New(feed SnapshotSource, log logger.Logger) *Handlers {
	return &Handlers{Feed: feed, Log: log}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Error("encode response", logger.Error(err))
	}
}
