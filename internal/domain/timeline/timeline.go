// Package timeline builds the unified activity feed shown on the client
// dashboard: quotes and forms normalized into one prioritized,
// time-grouped, searchable sequence.
package timeline

import (
	"sort"
	"time"

	"iq-home/quotes_backend/internal/domain/form"
	"iq-home/quotes_backend/internal/domain/quote"
)

// Group is one rendered section of the feed.
type Group struct {
	Bucket Bucket
	Items  []Item
}

// Build assembles the feed: adapt both record kinds, sort the merged set
// once, filter by query, then group by date bucket. Sorting happens
// before filtering so relative order stays stable no matter which items
// a search term excludes, and no per-bucket re-sort is needed. Buckets
// with no items are omitted.
//
// now comes from the caller; Build never reads the system clock, so the
// same inputs always produce the same feed.
func Build(quotes []*quote.Quote, forms []*form.Form, query string, now time.Time) []Group {
	items := make([]Item, 0, len(quotes)+len(forms))
	for _, q := range quotes {
		items = append(items, FromQuote(q))
	}
	for _, f := range forms {
		items = append(items, FromForm(f))
	}

	sort.SliceStable(items, func(i, j int) bool { return Less(items[i], items[j]) })

	grouped := make(map[Bucket][]Item, len(BucketOrder))
	for _, it := range items {
		if !Matches(it, query) {
			continue
		}
		b := Classify(it, now)
		grouped[b] = append(grouped[b], it)
	}

	out := make([]Group, 0, len(grouped))
	for _, b := range BucketOrder {
		if members, ok := grouped[b]; ok {
			out = append(out, Group{Bucket: b, Items: members})
		}
	}
	return out
}
