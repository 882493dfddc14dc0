package service

import (
	"time"

	"github.com/phrazzld/taas-events/internal/events"
)

type options struct {
	publisher  events.Publisher
	topic      string
	originator string
	now        func() time.Time
}

func defaultOptions() options {
	return options{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Option configures a service.
type Option func(*options)

// WithPublisher publishes every successful update to topic, stamped with
// originator. Without it updates are not announced.
func WithPublisher(p events.Publisher, topic, originator string) Option {
	return func(o *options) {
		o.publisher = p
		o.topic = topic
		o.originator = originator
	}
}

// WithClock overrides the time source used for updatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
