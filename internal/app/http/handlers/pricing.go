package handlers

import (
	"encoding/json"
	"net/http"

	"iq-home/quotes_backend/internal/domain/quote"
)

// PriceQuoteRequest carries the live-edited state of the quote editor.
// Numeric fields are the raw field text; the engine treats anything
// unparseable as zero instead of rejecting the request, so the editor
// can recompute on every keystroke.
type PriceQuoteRequest struct {
	TaxRate string `json:"tax_rate"`
	Items   []struct {
		Description     string `json:"description"`
		Quantity        string `json:"quantity"`
		UnitPrice       string `json:"unit_price"`
		DiscountPercent string `json:"discount_percent"`
	} `json:"items"`
}

type PriceQuoteResponse struct {
	LineTotals []string `json:"line_totals"`
	Subtotal   string   `json:"subtotal"`
	TaxAmount  string   `json:"tax_amount"`
	Total      string   `json:"total"`
}

func (h *Handlers) PriceQuote(w http.ResponseWriter, r *http.Request) {
	var req PriceQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	q := quote.Quote{TaxRate: req.TaxRate}
	for _, it := range req.Items {
		q.LineItems = append(q.LineItems, quote.LineItem{
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
		})
	}

	totals := q.Totals()
	resp := PriceQuoteResponse{
		LineTotals: make([]string, 0, len(q.LineItems)),
		Subtotal:   totals.Subtotal.String(),
		TaxAmount:  totals.TaxAmount.String(),
		Total:      totals.Total.String(),
	}
	for _, it := range q.LineItems {
		resp.LineTotals = append(resp.LineTotals, quote.LineTotal(it).String())
	}

	h.writeJSON(w, http.StatusOK, resp)
}
