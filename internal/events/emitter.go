package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/taas-events/internal/redact"
)

// InMemoryPublisher delivers published events synchronously to every
// subscribed EventHandler. It stands in for the broker when the service runs
// without one.
type InMemoryPublisher struct {
	handlers []EventHandler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewInMemoryPublisher creates a publisher with no subscribers.
func NewInMemoryPublisher(logger *slog.Logger) *InMemoryPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryPublisher{
		handlers: make([]EventHandler, 0),
		logger:   logger.With("component", "in_memory_publisher"),
	}
}

// Subscribe adds a handler that receives every published event.
func (p *InMemoryPublisher) Subscribe(handler EventHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers = append(p.handlers, handler)
	p.logger.Debug("registered event handler", "handler_count", len(p.handlers))
}

// Publish delivers event to all subscribers. Every subscriber sees the event
// even when an earlier one fails; the first error is returned.
func (p *InMemoryPublisher) Publish(ctx context.Context, event *Event) error {
	p.mu.RLock()
	handlers := make([]EventHandler, len(p.handlers))
	copy(handlers, p.handlers)
	p.mu.RUnlock()

	p.logger.Debug("publishing event",
		"event_id", event.ID,
		"topic", event.Topic,
		"handler_count", len(handlers))

	if len(handlers) == 0 {
		p.logger.Warn("no handlers subscribed for event",
			"event_id", event.ID,
			"topic", event.Topic)
		return nil
	}

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event.Topic, event.Payload); err != nil {
			p.logger.Error("handler failed to process event",
				"error", redact.Error(err),
				"handler_index", i,
				"event_id", event.ID,
				"topic", event.Topic)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

var _ Publisher = (*InMemoryPublisher)(nil)
