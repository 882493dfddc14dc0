// Package events routes incoming entity events to the handlers that react to
// them.
//
// A Dispatcher is built once at startup from a TopicMapping and then only
// read. The transport adapter calls HandleEvent for every message it
// receives; the dispatcher logs the outcome and hands the handler's error back
// to the transport, which owns redelivery.
//
// Publisher is the outbound side: services publish entity update events
// through it. InMemoryPublisher delivers published events straight to local
// handlers and is used when no broker is configured.
package events
