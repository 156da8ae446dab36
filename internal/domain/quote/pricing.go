package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// num parses a live-edited numeric field. Empty or not-yet-valid input
// counts as zero so totals stay usable between keystrokes.
func num(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// LineTotal prices a single row: quantity × unit price × (1 − discount/100).
// A discount above 100 is treated as 100, so a non-negative row never
// prices below zero.
func LineTotal(it LineItem) decimal.Decimal {
	factor := hundred.Sub(num(it.DiscountPercent))
	if factor.IsNegative() {
		factor = decimal.Zero
	}
	return num(it.Quantity).Mul(num(it.UnitPrice)).Mul(factor).Div(hundred)
}

type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// Totals recomputes the whole-quote summary from scratch. The input is
// never mutated and the same quote always yields identical results, so
// callers are free to recompute on every edit.
func (q Quote) Totals() Totals {
	subtotal := decimal.Zero
	for _, it := range q.LineItems {
		subtotal = subtotal.Add(LineTotal(it))
	}
	tax := subtotal.Mul(num(q.TaxRate)).Div(hundred)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax),
	}
}
