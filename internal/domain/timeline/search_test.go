package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"iq-home/quotes_backend/internal/domain/quote"
)

func TestMatches(t *testing.T) {
	quoteItem := FromQuote(&quote.Quote{
		Title:  "A sample quote title",
		Number: "NF-2024-001",
	})
	formItem := Item{Kind: KindForm, Title: "Contact form", Description: "Reach out to us"}

	tests := []struct {
		name  string
		item  Item
		query string
		want  bool
	}{
		{"empty query matches everything", formItem, "", true},
		{"whitespace-only query matches everything", formItem, "   ", true},
		{"case-insensitive title match", quoteItem, "Quote", true},
		{"title match on form", formItem, "contact", true},
		{"description match", formItem, "REACH OUT", true},
		{"quote number match", quoteItem, "nf-2024", true},
		{"no match", formItem, "invoice", false},
		{"quote number only searched for quotes", formItem, "NF-", false},
		{"query is trimmed before matching", formItem, "  contact  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.item, tt.query))
		})
	}
}

func TestMatchesEmptyDescription(t *testing.T) {
	it := Item{Kind: KindForm, Title: "Bare form"}
	assert.False(t, Matches(it, "anything"))
	assert.True(t, Matches(it, "bare"))
}
