package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// MimeTypeJSON is the only payload encoding produced and accepted.
const MimeTypeJSON = "application/json"

// ErrEmptyTopic is returned when an event is built without a topic.
var ErrEmptyTopic = errors.New("event topic is required")

// Payload is the raw structured body of an event.
type Payload json.RawMessage

// Decode unmarshals the payload into v.
func (p Payload) Decode(v any) error {
	return json.Unmarshal(p, v)
}

// MarshalJSON keeps the payload verbatim when an Event is encoded.
func (p Payload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return json.RawMessage(p).MarshalJSON()
}

// UnmarshalJSON stores a copy of the raw payload bytes.
func (p *Payload) UnmarshalJSON(data []byte) error {
	*p = append((*p)[:0], data...)
	return nil
}

// String returns the payload as text, for logging.
func (p Payload) String() string {
	return string(p)
}

// NewPayload encodes v as a JSON payload.
func NewPayload(v any) (Payload, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Payload(b), nil
}

// HandlerFunc reacts to a single event.
type HandlerFunc func(ctx context.Context, payload Payload) error

// TopicMapping binds topic names to the handler invoked for them.
type TopicMapping map[string]HandlerFunc

// Event is an entity event as it travels between services.
type Event struct {
	// ID identifies this event instance; it is not part of the payload.
	ID         uuid.UUID `json:"id"`
	Topic      string    `json:"topic"`
	Originator string    `json:"originator"`
	Timestamp  time.Time `json:"timestamp"`
	MimeType   string    `json:"mime-type"`
	Payload    Payload   `json:"payload"`
}

// NewEvent builds an event for topic with v encoded as its payload.
func NewEvent(topic, originator string, v any) (*Event, error) {
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	payload, err := NewPayload(v)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:         uuid.New(),
		Topic:      topic,
		Originator: originator,
		Timestamp:  time.Now().UTC(),
		MimeType:   MimeTypeJSON,
		Payload:    payload,
	}, nil
}

// EventHandler is implemented by anything that can consume a topic/payload
// pair. Dispatcher satisfies it.
type EventHandler interface {
	HandleEvent(ctx context.Context, topic string, payload Payload) error
}

// Publisher sends events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
}
