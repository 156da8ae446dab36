package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want string
	}{
		{
			name: "plain quantity times price",
			item: LineItem{Quantity: "2", UnitPrice: "10"},
			want: "20",
		},
		{
			name: "half discount",
			item: LineItem{Quantity: "1", UnitPrice: "5", DiscountPercent: "50"},
			want: "2.5",
		},
		{
			name: "full discount is exactly zero",
			item: LineItem{Quantity: "3", UnitPrice: "9.99", DiscountPercent: "100"},
			want: "0",
		},
		{
			name: "fractional quantity",
			item: LineItem{Quantity: "1.5", UnitPrice: "4", DiscountPercent: "0"},
			want: "6",
		},
		{
			name: "empty unit price counts as zero",
			item: LineItem{Quantity: "2", UnitPrice: ""},
			want: "0",
		},
		{
			name: "garbage quantity counts as zero",
			item: LineItem{Quantity: "abc", UnitPrice: "10"},
			want: "0",
		},
		{
			name: "garbage discount counts as zero",
			item: LineItem{Quantity: "2", UnitPrice: "10", DiscountPercent: "x"},
			want: "20",
		},
		{
			name: "whitespace around the field text",
			item: LineItem{Quantity: " 2 ", UnitPrice: " 10 "},
			want: "20",
		},
		{
			name: "discount above hundred clamps to zero total",
			item: LineItem{Quantity: "2", UnitPrice: "10", DiscountPercent: "150"},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			got := LineTotal(tt.item)
			assert.True(t, got.Equal(want), "LineTotal() = %s, want %s", got, want)
		})
	}
}

func TestTotalsScenario(t *testing.T) {
	q := Quote{
		TaxRate: "10",
		LineItems: []LineItem{
			{Quantity: "2", UnitPrice: "10", DiscountPercent: "0"},
			{Quantity: "1", UnitPrice: "5", DiscountPercent: "50"},
		},
	}

	got := q.Totals()

	assert.True(t, got.Subtotal.Equal(decimal.RequireFromString("22.5")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.TaxAmount.Equal(decimal.RequireFromString("2.25")), "tax = %s", got.TaxAmount)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("24.75")), "total = %s", got.Total)
}

func TestTotalsEmptyQuote(t *testing.T) {
	for _, rate := range []string{"", "0", "19", "garbage"} {
		got := Quote{TaxRate: rate}.Totals()
		assert.True(t, got.Subtotal.IsZero(), "subtotal with rate %q", rate)
		assert.True(t, got.TaxAmount.IsZero(), "tax with rate %q", rate)
		assert.True(t, got.Total.IsZero(), "total with rate %q", rate)
	}
}

func TestTotalsUnparseableTaxRate(t *testing.T) {
	q := Quote{
		TaxRate:   "not-a-number",
		LineItems: []LineItem{{Quantity: "2", UnitPrice: "10"}},
	}

	got := q.Totals()

	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.Total.Equal(got.Subtotal))
}

func TestTotalsIdempotent(t *testing.T) {
	q := Quote{
		TaxRate: "7.5",
		LineItems: []LineItem{
			{Quantity: "3", UnitPrice: "19.99", DiscountPercent: "12.5"},
			{Quantity: "0.25", UnitPrice: "100", DiscountPercent: "0"},
		},
	}

	first := q.Totals()
	second := q.Totals()

	assert.Equal(t, first.Subtotal.String(), second.Subtotal.String())
	assert.Equal(t, first.TaxAmount.String(), second.TaxAmount.String())
	assert.Equal(t, first.Total.String(), second.Total.String())
}

func TestLineTotalNeverNegative(t *testing.T) {
	items := []LineItem{
		{Quantity: "0", UnitPrice: "0"},
		{Quantity: "10", UnitPrice: "0.01", DiscountPercent: "100"},
		{Quantity: "1000000", UnitPrice: "9999.99", DiscountPercent: "99.99"},
	}
	for _, it := range items {
		assert.False(t, LineTotal(it).IsNegative(), "item %+v", it)
	}
}
