package postgres

import (
	"context"
	"fmt"

	"iq-home/quotes_backend/internal/domain/form"
)

// ListForms returns the complete form snapshot, newest first.
func (db *DB) ListForms(ctx context.Context) ([]*form.Form, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), status, priority, created_at, COALESCE(public_slug, '')
		FROM forms
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	defer rows.Close()

	var forms []*form.Form
	for rows.Next() {
		f := &form.Form{}
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Status,
			&f.Priority, &f.CreatedAt, &f.PublicSlug); err != nil {
			return nil, fmt.Errorf("scan form: %w", err)
		}
		forms = append(forms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return forms, nil
}
