package handlers

import (
	"net/http"
	"time"

	"iq-home/quotes_backend/internal/domain/timeline"
	"iq-home/quotes_backend/internal/logger"
)

type timelineItemResponse struct {
	Kind        string    `json:"kind"`
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}

type timelineGroupResponse struct {
	Bucket string                 `json:"bucket"`
	Items  []timelineItemResponse `json:"items"`
}

// Timeline serves the bucketed activity feed. The search query comes
// through verbatim; "now" is snapshotted once per request so grouping is
// consistent across the whole response.
func (h *Handlers) Timeline(w http.ResponseWriter, r *http.Request) {
	quotes, forms, err := h.Feed.Snapshot(r.Context())
	if err != nil {
		h.Log.Error("timeline snapshot", logger.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	groups := timeline.Build(quotes, forms, r.URL.Query().Get("q"), time.Now())

	resp := make([]timelineGroupResponse, 0, len(groups))
	for _, g := range groups {
		out := timelineGroupResponse{
			Bucket: string(g.Bucket),
			Items:  make([]timelineItemResponse, 0, len(g.Items)),
		}
		for _, it := range g.Items {
			out.Items = append(out.Items, timelineItemResponse{
				Kind:        string(it.Kind),
				ID:          it.ID,
				Title:       it.Title,
				Description: it.Description,
				Status:      it.Status,
				Priority:    it.Priority,
				CreatedAt:   it.CreatedAt,
			})
		}
		resp = append(resp, out)
	}

	h.writeJSON(w, http.StatusOK, resp)
}
