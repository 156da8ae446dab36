package timeline

import (
	"time"

	"iq-home/quotes_backend/internal/domain/form"
	"iq-home/quotes_backend/internal/domain/quote"
)

type Kind string

const (
	KindQuote Kind = "quote"
	KindForm  Kind = "form"
)

const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Item is the normalized representation of a quote or a form in the
// activity feed. Exactly one of Quote/Form is set, matching Kind; it is
// carried along for click-through and kind-specific actions.
//
// IDs are only unique within a kind. A quote and a form may share the
// same numeric ID, so anything keying items must use Key(), never ID.
type Item struct {
	Kind        Kind
	ID          int64
	Title       string
	Description string
	Status      string
	Priority    string
	CreatedAt   time.Time

	Quote *quote.Quote
	Form  *form.Form
}

type Key struct {
	Kind Kind
	ID   int64
}

func (it Item) Key() Key { return Key{Kind: it.Kind, ID: it.ID} }

// FromQuote normalizes a quote record. Quotes have no free-form
// description, so one is synthesized from the quote number.
func FromQuote(q *quote.Quote) Item {
	return Item{
		Kind:        KindQuote,
		ID:          q.ID,
		Title:       q.Title,
		Description: "Quote #" + q.Number,
		Status:      string(q.Status),
		Priority:    priorityOrDefault(q.Priority),
		CreatedAt:   q.CreatedAt,
		Quote:       q,
	}
}

// FromForm normalizes a form record, passing its description through.
func FromForm(f *form.Form) Item {
	return Item{
		Kind:        KindForm,
		ID:          f.ID,
		Title:       f.Name,
		Description: f.Description,
		Status:      string(f.Status),
		Priority:    priorityOrDefault(f.Priority),
		CreatedAt:   f.CreatedAt,
		Form:        f,
	}
}

func priorityOrDefault(p string) string {
	if p == "" {
		return PriorityNormal
	}
	return p
}
