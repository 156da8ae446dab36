// Package feed supplies the record snapshots the timeline is built from.
package feed

import (
	"context"
	"fmt"

	"iq-home/quotes_backend/internal/domain/form"
	"iq-home/quotes_backend/internal/domain/quote"
	"iq-home/quotes_backend/internal/infra/cache"
	"iq-home/quotes_backend/internal/infra/db/postgres"
	"iq-home/quotes_backend/internal/logger"
)

// Service loads quote/form snapshots, caching the result until a record
// change invalidates it. Cache failures degrade to a database read.
type Service struct {
	db    *postgres.DB
	cache *cache.Snapshot
	log   logger.Logger
}

func New(db *postgres.DB, cache *cache.Snapshot, log logger.Logger) *Service {
	return &Service{db: db, cache: cache, log: log}
}

// Snapshot returns the current quote and form collections.
func (s *Service) Snapshot(ctx context.Context) ([]*quote.Quote, []*form.Form, error) {
	quotes, forms, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warn("snapshot cache read failed", logger.Error(err))
	}
	if ok {
		return quotes, forms, nil
	}

	quotes, err = s.db.ListQuotes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load quotes: %w", err)
	}
	forms, err = s.db.ListForms(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load forms: %w", err)
	}

	if err := s.cache.Set(ctx, quotes, forms); err != nil {
		s.log.Warn("snapshot cache write failed", logger.Error(err))
	}
	return quotes, forms, nil
}

// Invalidate drops the cached snapshot. Called for every record-change
// notification; the next request re-derives the feed from storage.
func (s *Service) Invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("snapshot invalidation failed", logger.Error(err))
		return
	}
	s.log.Info("snapshot invalidated")
}
