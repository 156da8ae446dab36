package postgres

import (
	"context"
	"fmt"

	"iq-home/quotes_backend/internal/domain/quote"
)

// ListQuotes returns the complete quote snapshot, newest first. The
// numeric columns are stored as the raw field text the editor submitted;
// the pricing engine parses them leniently.
func (db *DB) ListQuotes(ctx context.Context) ([]*quote.Quote, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, title, number, client_ref, currency, tax_rate, status, priority, created_at
		FROM quotes
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*quote.Quote
	byID := map[int64]*quote.Quote{}
	for rows.Next() {
		q := &quote.Quote{}
		if err := rows.Scan(&q.ID, &q.Title, &q.Number, &q.ClientRef, &q.Currency,
			&q.TaxRate, &q.Status, &q.Priority, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, q)
		byID[q.ID] = q
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	if err := db.attachLineItems(ctx, byID); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (db *DB) attachLineItems(ctx context.Context, quotes map[int64]*quote.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT quote_id, description, quantity, unit_price, discount_percent
		FROM quote_line_items
		ORDER BY quote_id, position`)
	if err != nil {
		return fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var quoteID int64
		var it quote.LineItem
		if err := rows.Scan(&quoteID, &it.Description, &it.Quantity,
			&it.UnitPrice, &it.DiscountPercent); err != nil {
			return fmt.Errorf("scan line item: %w", err)
		}
		if q, ok := quotes[quoteID]; ok {
			q.LineItems = append(q.LineItems, it)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list line items: %w", err)
	}
	return nil
}
