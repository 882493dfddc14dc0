package events

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/phrazzld/taas-events/internal/platform/logger"
	"github.com/phrazzld/taas-events/internal/redact"
)

// ErrDispatcherSealed is returned by Register once the dispatcher has started
// handling events.
var ErrDispatcherSealed = errors.New("dispatcher already handling events")

// Dispatcher routes events to the handler registered for their topic.
//
// The topic table is fixed once the first event is handled; after that the
// dispatcher is safe for concurrent use without any further coordination.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
	sealed   bool
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher from a copy of mapping. If logger is nil,
// the default logger is used.
func NewDispatcher(mapping TopicMapping, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	handlers := make(map[string]HandlerFunc, len(mapping))
	for topic, fn := range mapping {
		if fn != nil {
			handlers[topic] = fn
		}
	}

	return &Dispatcher{
		handlers: handlers,
		logger: logger.With(
			slog.String("component", "event_dispatcher"),
			slog.String("context", "handleEvent"),
		),
	}
}

// Register binds fn to topic, replacing any earlier binding. It must be
// called during initialization; once HandleEvent has run it returns
// ErrDispatcherSealed and leaves the table unchanged.
func (d *Dispatcher) Register(topic string, fn HandlerFunc) error {
	if topic == "" {
		return ErrEmptyTopic
	}
	if fn == nil {
		return errors.New("handler function is required")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sealed {
		return ErrDispatcherSealed
	}
	d.handlers[topic] = fn
	return nil
}

// HandleEvent invokes the handler registered for topic.
//
// Events for unknown topics are logged and ignored. A handler error is logged
// and returned unchanged so the caller can decide on redelivery.
func (d *Dispatcher) HandleEvent(ctx context.Context, topic string, payload Payload) error {
	fn := d.lookup(topic)

	log := d.logger
	if id := logger.EventID(ctx); id != "" {
		log = log.With(slog.String("event_id", id))
	}

	if fn == nil {
		log.Info("not interested event", slog.String("topic", topic))
		return nil
	}

	log.Debug("handling event",
		slog.String("topic", topic),
		slog.String("payload", payload.String()))

	if err := fn(ctx, payload); err != nil {
		log.Error("failed to handle event",
			slog.String("topic", topic),
			slog.String("error", redact.Error(err)))
		return err
	}

	log.Info("event successfully handled", slog.String("topic", topic))
	return nil
}

// Topics returns the registered topics in sorted order.
func (d *Dispatcher) Topics() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	topics := make([]string, 0, len(d.handlers))
	for topic := range d.handlers {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

func (d *Dispatcher) lookup(topic string) HandlerFunc {
	d.mu.RLock()
	if d.sealed {
		fn := d.handlers[topic]
		d.mu.RUnlock()
		return fn
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.sealed = true
	return d.handlers[topic]
}

var _ EventHandler = (*Dispatcher)(nil)
