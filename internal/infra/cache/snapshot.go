package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"iq-home/quotes_backend/internal/domain/form"
	"iq-home/quotes_backend/internal/domain/quote"
)

const snapshotKey = "timeline:snapshot:v1"

// DefaultSnapshotTTL bounds how stale a snapshot can get if a change
// notification is ever lost.
const DefaultSnapshotTTL = 5 * time.Minute

type snapshotPayload struct {
	Quotes []*quote.Quote `json:"quotes"`
	Forms  []*form.Form   `json:"forms"`
}

// Snapshot caches the quote/form collections the timeline is rebuilt
// from, so a rebuild after a change notification is a cheap re-read.
type Snapshot struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshot(client *redis.Client, ttl time.Duration) *Snapshot {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &Snapshot{client: client, ttl: ttl}
}

// Get returns the cached snapshot, or ok=false on a miss.
func (s *Snapshot) Get(ctx context.Context) ([]*quote.Quote, []*form.Form, bool, error) {
	data, err := s.client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("get snapshot: %w", err)
	}
	var p snapshotPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return p.Quotes, p.Forms, true, nil
}

func (s *Snapshot) Set(ctx context.Context, quotes []*quote.Quote, forms []*form.Form) error {
	data, err := json.Marshal(snapshotPayload{Quotes: quotes, Forms: forms})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, snapshotKey, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *Snapshot) Invalidate(ctx context.Context) error {
	if err := s.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("invalidate snapshot: %w", err)
	}
	return nil
}
