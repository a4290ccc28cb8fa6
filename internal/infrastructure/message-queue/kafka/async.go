package kafka

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// AsyncPublisher hands events to the wrapped publisher on a background
// goroutine so a slow or unreachable broker never holds up a request.
// Close waits for in-flight events before closing the wrapped publisher.
type AsyncPublisher struct {
	next EventPublisher
	wg   sync.WaitGroup
}

func NewAsyncPublisher(next EventPublisher) *AsyncPublisher {
	return &AsyncPublisher{next: next}
}

func (p *AsyncPublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	// the request context is cancelled once the response is written
	ctx = context.WithoutCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		if err := p.next.Publish(ctx, eventType, key, data); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "AsyncPublisher").Str("event_type", eventType).Str("key", key).Msg("event not published")
		}
	}()

	return nil
}

func (p *AsyncPublisher) Close() error {
	p.wg.Wait()
	return p.next.Close()
}
