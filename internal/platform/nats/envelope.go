package nats

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/phrazzld/taas-events/internal/events"
)

// ErrInvalidEnvelope is returned when a message body is not a usable event
// envelope.
var ErrInvalidEnvelope = errors.New("invalid event envelope")

// EncodeEnvelope serializes event for the wire.
func EncodeEnvelope(event *events.Event) ([]byte, error) {
	if event == nil {
		return nil, fmt.Errorf("%w: nil event", ErrInvalidEnvelope)
	}
	if event.Topic == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, events.ErrEmptyTopic)
	}
	return json.Marshal(event)
}

// DecodeEnvelope parses a message body. When the envelope omits its topic,
// subject is used instead.
func DecodeEnvelope(data []byte, subject string) (*events.Event, error) {
	var event events.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}

	if event.Topic == "" {
		event.Topic = subject
	}
	if event.Topic == "" {
		return nil, fmt.Errorf("%w: missing topic", ErrInvalidEnvelope)
	}
	if event.MimeType != "" && event.MimeType != events.MimeTypeJSON {
		return nil, fmt.Errorf("%w: unsupported mime-type %q", ErrInvalidEnvelope, event.MimeType)
	}
	if len(event.Payload) == 0 || string(event.Payload) == "null" {
		return nil, fmt.Errorf("%w: missing payload", ErrInvalidEnvelope)
	}

	return &event, nil
}
