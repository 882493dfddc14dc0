// Package logger provides structured logging for the event service using the
// standard library log/slog package: level parsing, JSON output, and a
// context-carried logger so request-scoped attributes follow an event through
// the dispatcher, handlers and services.
package logger
