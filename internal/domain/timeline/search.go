package timeline

import "strings"

// Matches reports whether the item survives the dashboard search box.
// An empty or whitespace-only query keeps everything; otherwise the query
// is matched case-insensitively against title, description and, for
// quotes, the quote number.
func Matches(it Item, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(it.Title), q) {
		return true
	}
	if it.Description != "" && strings.Contains(strings.ToLower(it.Description), q) {
		return true
	}
	if it.Kind == KindQuote && it.Quote != nil &&
		strings.Contains(strings.ToLower(it.Quote.Number), q) {
		return true
	}
	return false
}
