// Package nats carries events over NATS JetStream.
//
// Subscriber creates one durable consumer per dispatcher topic and feeds each
// message to an events.EventHandler. A message is acknowledged when the
// handler succeeds and negatively acknowledged when it fails, so redelivery
// (bounded by MaxDeliver) is owned by JetStream. Messages whose envelope
// cannot be decoded are terminated.
//
// Publisher sends events as JSON envelopes on the subject named by the event
// topic.
package nats
