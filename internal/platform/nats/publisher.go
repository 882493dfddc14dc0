package nats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/phrazzld/taas-events/internal/events"
)

// Publisher sends events to JetStream. It implements events.Publisher.
type Publisher struct {
	js     jetstream.JetStream
	logger *slog.Logger
}

// NewPublisher creates a publisher on js.
func NewPublisher(js jetstream.JetStream, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		js:     js,
		logger: logger.With(slog.String("component", "nats_publisher")),
	}
}

// Publish sends event on the subject named by its topic. The event id is used
// as the JetStream message id so retried publishes are deduplicated.
func (p *Publisher) Publish(ctx context.Context, event *events.Event) error {
	data, err := EncodeEnvelope(event)
	if err != nil {
		return err
	}

	ack, err := p.js.Publish(ctx, event.Topic, data, jetstream.WithMsgID(event.ID.String()))
	if err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", event.Topic, err)
	}

	p.logger.Debug("event published",
		slog.String("topic", event.Topic),
		slog.String("event_id", event.ID.String()),
		slog.Uint64("sequence", ack.Sequence),
		slog.Bool("duplicate", ack.Duplicate))
	return nil
}

var _ events.Publisher = (*Publisher)(nil)
