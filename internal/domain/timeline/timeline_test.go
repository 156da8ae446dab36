package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iq-home/quotes_backend/internal/domain/form"
	"iq-home/quotes_backend/internal/domain/quote"
)

func TestBuildMergedSortScenario(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	quotes := []*quote.Quote{
		{ID: 1, Title: "Old urgent quote", Priority: "high",
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	forms := []*form.Form{
		{ID: 1, Name: "Recent form", Priority: "normal",
			CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	groups := Build(quotes, forms, "", now)

	var flat []Item
	for _, g := range groups {
		flat = append(flat, g.Items...)
	}
	require.Len(t, flat, 2)
	assert.Equal(t, KindQuote, flat[0].Kind, "high-priority quote leads despite the earlier date")
	assert.Equal(t, KindForm, flat[1].Kind)
}

func TestBuildGroupsInFixedOrderAndOmitsEmpty(t *testing.T) {
	now := time.Date(2024, 6, 15, 15, 0, 0, 0, time.UTC)
	quotes := []*quote.Quote{
		{ID: 1, Title: "Today quote", CreatedAt: now.Add(-time.Hour)},
		{ID: 2, Title: "Ancient quote", CreatedAt: now.AddDate(-1, 0, 0)},
	}

	groups := Build(quotes, nil, "", now)

	require.Len(t, groups, 2)
	assert.Equal(t, BucketToday, groups[0].Bucket)
	assert.Equal(t, BucketOlder, groups[1].Bucket)
	for _, g := range groups {
		assert.NotEmpty(t, g.Items, "empty buckets never appear")
	}
}

func TestBuildFilterKeepsSortOrderWithinBuckets(t *testing.T) {
	now := time.Date(2024, 6, 15, 15, 0, 0, 0, time.UTC)
	quotes := []*quote.Quote{
		{ID: 1, Title: "Rewire garage", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: 2, Title: "Paint fence", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 3, Title: "Rewire attic", CreatedAt: now.Add(-3 * time.Hour)},
	}

	groups := Build(quotes, nil, "rewire", now)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "Rewire garage", groups[0].Items[0].Title)
	assert.Equal(t, "Rewire attic", groups[0].Items[1].Title)
}

func TestBuildSearchByQuoteNumber(t *testing.T) {
	now := time.Date(2024, 6, 15, 15, 0, 0, 0, time.UTC)
	quotes := []*quote.Quote{
		{ID: 1, Title: "Garage", Number: "NF-77", CreatedAt: now.Add(-time.Hour)},
	}
	forms := []*form.Form{
		{ID: 1, Name: "Survey", CreatedAt: now.Add(-time.Hour)},
	}

	groups := Build(quotes, forms, "nf-77", now)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, KindQuote, groups[0].Items[0].Kind)
}

func TestBuildEmptyInputs(t *testing.T) {
	groups := Build(nil, nil, "", time.Now())
	assert.Empty(t, groups)
}

func TestBuildIsDeterministic(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	quotes := []*quote.Quote{
		{ID: 1, Title: "A", CreatedAt: now.Add(-time.Hour)},
		{ID: 2, Title: "B", Priority: "high", CreatedAt: now.AddDate(0, 0, -10)},
	}
	forms := []*form.Form{
		{ID: 1, Name: "C", CreatedAt: now.AddDate(0, 0, -2)},
	}

	first := Build(quotes, forms, "", now)
	second := Build(quotes, forms, "", now)

	assert.Equal(t, first, second, "same inputs and now yield the same feed")
}

func TestBuildOneItemPerSourceRecord(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	quotes := []*quote.Quote{
		{ID: 1, CreatedAt: now}, {ID: 2, CreatedAt: now},
	}
	forms := []*form.Form{
		{ID: 1, CreatedAt: now}, // shares numeric ID with quote 1
	}

	groups := Build(quotes, forms, "", now)

	seen := map[Key]bool{}
	total := 0
	for _, g := range groups {
		for _, it := range g.Items {
			assert.False(t, seen[it.Key()], "duplicate key %+v", it.Key())
			seen[it.Key()] = true
			total++
		}
	}
	assert.Equal(t, 3, total)
}
