package quote

import "time"

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusViewed   Status = "viewed"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// transitions lists the moves the quote-management service may make.
// This engine never advances status itself; unknown status strings coming
// from storage are rendered verbatim, not rejected.
var transitions = map[Status][]Status{
	StatusDraft:  {StatusSent},
	StatusSent:   {StatusViewed, StatusDeclined},
	StatusViewed: {StatusAccepted, StatusDeclined},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the quote can move no further.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusDeclined
}

func (s Status) String() string { return string(s) }

// LineItem is one priced row of a quote. The numeric fields hold the raw
// text of the edit fields: while a row is mid-edit they may be empty or
// not yet a valid number, and pricing treats such values as zero.
type LineItem struct {
	Description     string `json:"description"`
	Quantity        string `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	DiscountPercent string `json:"discount_percent"`
}

type Quote struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Number    string    `json:"number"`
	ClientRef string    `json:"client_ref"`
	Currency  string    `json:"currency"`
	TaxRate   string    `json:"tax_rate"`
	Status    Status    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`

	// LineItems keep their display order; the order never changes totals.
	LineItems []LineItem `json:"line_items"`
}
