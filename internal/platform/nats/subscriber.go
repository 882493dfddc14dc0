package nats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/phrazzld/taas-events/internal/events"
	"github.com/phrazzld/taas-events/internal/platform/logger"
	"github.com/phrazzld/taas-events/internal/redact"
)

// SubscriberConfig configures the durable consumers.
type SubscriberConfig struct {
	Stream         string
	ConsumerPrefix string
	AckWait        time.Duration
	MaxDeliver     int
}

// Subscriber consumes dispatcher topics from JetStream.
type Subscriber struct {
	js      jetstream.JetStream
	handler events.EventHandler
	topics  []string
	cfg     SubscriberConfig
	logger  *slog.Logger

	mu       sync.Mutex
	running  []jetstream.ConsumeContext
	stopped  bool
	inflight sync.WaitGroup
}

// NewSubscriber creates a subscriber delivering topics to handler.
func NewSubscriber(
	js jetstream.JetStream,
	handler events.EventHandler,
	topics []string,
	cfg SubscriberConfig,
	logger *slog.Logger,
) (*Subscriber, error) {
	if js == nil || handler == nil {
		return nil, errors.New("jetstream and handler are required")
	}
	if len(topics) == 0 {
		return nil, errors.New("at least one topic is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Subscriber{
		js:      js,
		handler: handler,
		topics:  append([]string(nil), topics...),
		cfg:     cfg,
		logger:  logger.With(slog.String("component", "nats_subscriber")),
	}, nil
}

// Start creates or updates one durable consumer per topic and begins
// consuming. Messages are handled on the consumer's goroutine, one at a time
// per topic; ctx is the parent of every handler invocation.
func (s *Subscriber) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return errors.New("subscriber stopped")
	}
	if len(s.running) > 0 {
		return errors.New("subscriber already started")
	}

	for _, topic := range s.topics {
		name := consumerName(s.cfg.ConsumerPrefix, topic)
		consumer, err := s.js.CreateOrUpdateConsumer(ctx, s.cfg.Stream, jetstream.ConsumerConfig{
			Name:          name,
			Durable:       name,
			FilterSubject: topic,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       s.cfg.AckWait,
			MaxDeliver:    s.cfg.MaxDeliver,
		})
		if err != nil {
			s.stopLocked()
			return fmt.Errorf("failed to create consumer for %s: %w", topic, err)
		}

		cc, err := consumer.Consume(func(msg jetstream.Msg) {
			if !s.enter() {
				s.release(msg)
				return
			}
			defer s.inflight.Done()
			s.handleMessage(ctx, msg)
		})
		if err != nil {
			s.stopLocked()
			return fmt.Errorf("failed to consume %s: %w", topic, err)
		}
		s.running = append(s.running, cc)

		s.logger.Info("subscribed to topic",
			slog.String("topic", topic),
			slog.String("consumer", name))
	}
	return nil
}

// Stop stops all consumers and waits for in-flight messages to finish.
// Messages delivered after Stop are handed back for redelivery. A stopped
// subscriber cannot be restarted.
func (s *Subscriber) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.stopLocked()
	s.mu.Unlock()

	s.inflight.Wait()
}

// enter registers an in-flight message unless the subscriber is stopping.
func (s *Subscriber) enter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return false
	}
	s.inflight.Add(1)
	return true
}

// release returns a message that arrived during shutdown to the stream.
func (s *Subscriber) release(msg jetstream.Msg) {
	if err := msg.Nak(); err != nil {
		s.logger.Warn("failed to nak message during shutdown",
			slog.String("subject", msg.Subject()),
			slog.String("error", redact.Error(err)))
	}
}

func (s *Subscriber) stopLocked() {
	for _, cc := range s.running {
		cc.Stop()
	}
	s.running = nil
}

// handleMessage decodes msg, hands it to the handler and settles it.
func (s *Subscriber) handleMessage(ctx context.Context, msg jetstream.Msg) {
	log := s.logger.With(slog.String("subject", msg.Subject()))

	event, err := DecodeEnvelope(msg.Data(), msg.Subject())
	if err != nil {
		log.Error("dropping undecodable message", slog.String("error", err.Error()))
		if termErr := msg.Term(); termErr != nil {
			log.Warn("failed to terminate message", slog.String("error", redact.Error(termErr)))
		}
		return
	}

	ctx = logger.WithEventID(ctx, eventID(event, msg))

	if err := s.handler.HandleEvent(ctx, event.Topic, event.Payload); err != nil {
		log.Warn("event handling failed, requesting redelivery",
			slog.String("topic", event.Topic),
			slog.String("error", redact.Error(err)))
		if nakErr := msg.Nak(); nakErr != nil {
			log.Warn("failed to nak message", slog.String("error", redact.Error(nakErr)))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		log.Warn("failed to ack message", slog.String("error", redact.Error(err)))
	}
}

// eventID prefers the envelope id and falls back to the stream sequence.
func eventID(event *events.Event, msg jetstream.Msg) string {
	if event.ID != uuid.Nil {
		return event.ID.String()
	}
	if md, err := msg.Metadata(); err == nil && md != nil {
		return "seq-" + strconv.FormatUint(md.Sequence.Stream, 10)
	}
	return ""
}
