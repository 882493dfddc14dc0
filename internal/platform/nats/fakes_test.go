package nats

import (
	"context"
	"sync"

	"github.com/nats-io/nats.go/jetstream"
)

// fakeMsg implements the parts of jetstream.Msg the subscriber uses.
type fakeMsg struct {
	jetstream.Msg
	subject string
	data    []byte
	seq     uint64

	mu      sync.Mutex
	settled []string
}

func (m *fakeMsg) Subject() string { return m.subject }
func (m *fakeMsg) Data() []byte    { return m.data }

func (m *fakeMsg) Metadata() (*jetstream.MsgMetadata, error) {
	return &jetstream.MsgMetadata{Sequence: jetstream.SequencePair{Stream: m.seq}}, nil
}

func (m *fakeMsg) settle(how string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settled = append(m.settled, how)
	return nil
}

func (m *fakeMsg) Ack() error  { return m.settle("ack") }
func (m *fakeMsg) Nak() error  { return m.settle("nak") }
func (m *fakeMsg) Term() error { return m.settle("term") }

func (m *fakeMsg) outcomes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.settled...)
}

type fakeConsumeContext struct {
	jetstream.ConsumeContext
	stopped bool
}

func (c *fakeConsumeContext) Stop() { c.stopped = true }

type fakeConsumer struct {
	jetstream.Consumer
	handler jetstream.MessageHandler
	cc      *fakeConsumeContext
}

func (c *fakeConsumer) Consume(handler jetstream.MessageHandler, opts ...jetstream.PullConsumeOpt) (jetstream.ConsumeContext, error) {
	c.handler = handler
	c.cc = &fakeConsumeContext{}
	return c.cc, nil
}

type publishedMsg struct {
	subject string
	data    []byte
}

// fakeJetStream records consumer configs and published messages.
type fakeJetStream struct {
	jetstream.JetStream

	consumerErr error
	publishErr  error

	mu        sync.Mutex
	configs   []jetstream.ConsumerConfig
	streams   []string
	consumers map[string]*fakeConsumer
	published []publishedMsg
}

func newFakeJetStream() *fakeJetStream {
	return &fakeJetStream{consumers: make(map[string]*fakeConsumer)}
}

func (f *fakeJetStream) CreateOrUpdateConsumer(
	ctx context.Context,
	stream string,
	cfg jetstream.ConsumerConfig,
) (jetstream.Consumer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.consumerErr != nil {
		return nil, f.consumerErr
	}
	f.streams = append(f.streams, stream)
	f.configs = append(f.configs, cfg)
	c := &fakeConsumer{}
	f.consumers[cfg.FilterSubject] = c
	return c, nil
}

func (f *fakeJetStream) CreateOrUpdateStream(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.streams = append(f.streams, cfg.Name)
	return nil, nil
}

func (f *fakeJetStream) Publish(
	ctx context.Context,
	subject string,
	payload []byte,
	opts ...jetstream.PublishOpt,
) (*jetstream.PubAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return nil, f.publishErr
	}
	f.published = append(f.published, publishedMsg{subject: subject, data: payload})
	return &jetstream.PubAck{Stream: "TAAS_EVENTS", Sequence: uint64(len(f.published))}, nil
}
