package handlers

import "errors"

var (
	// ErrInvalidPayload is returned when an event payload cannot be decoded
	// or lacks a field the cascade needs.
	ErrInvalidPayload = errors.New("invalid event payload")

	// ErrMissingDependency is returned by constructors when a collaborator is nil.
	ErrMissingDependency = errors.New("handler dependency is nil")
)
