package realtime

import (
	"context"

	"github.com/redis/go-redis/v9"

	"iq-home/quotes_backend/internal/logger"
)

// Listener subscribes to record-change notifications. The only reaction
// is a full rebuild signal; the payload is informational. Duplicate or
// out-of-order deliveries are harmless because rebuilding from the same
// snapshot is idempotent.
type Listener struct {
	client  *redis.Client
	channel string
	onEvent func(ctx context.Context)
	log     logger.Logger
}

func New(client *redis.Client, channel string, onEvent func(ctx context.Context), log logger.Logger) *Listener {
	return &Listener{client: client, channel: channel, onEvent: onEvent, log: log}
}

// Start consumes notifications until ctx is cancelled.
func (l *Listener) Start(ctx context.Context) {
	sub := l.client.Subscribe(ctx, l.channel)
	go func() {
		defer func() {
			if err := sub.Close(); err != nil {
				l.log.Warn("closing subscription", logger.Error(err))
			}
		}()

		ch := sub.Channel()
		l.log.Info("listening for record changes", logger.String("channel", l.channel))
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				l.log.Info("record change received",
					logger.String("channel", msg.Channel),
					logger.String("payload", msg.Payload))
				l.onEvent(ctx)
			}
		}
	}()
}
