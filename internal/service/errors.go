package service

import (
	"errors"
	"fmt"
)

// ErrNilDependency is returned by constructors when a required dependency is
// missing.
var ErrNilDependency = errors.New("required dependency is nil")

// JobCandidateServiceError is returned by JobCandidateService operations.
type JobCandidateServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for JobCandidateServiceError.
func (e *JobCandidateServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("job candidate service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("job candidate service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *JobCandidateServiceError) Unwrap() error {
	return e.Err
}

// NewJobCandidateServiceError creates a new JobCandidateServiceError.
func NewJobCandidateServiceError(operation, message string, err error) *JobCandidateServiceError {
	return &JobCandidateServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// ResourceBookingServiceError is returned by ResourceBookingService operations.
type ResourceBookingServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ResourceBookingServiceError.
func (e *ResourceBookingServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resource booking service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("resource booking service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ResourceBookingServiceError) Unwrap() error {
	return e.Err
}

// NewResourceBookingServiceError creates a new ResourceBookingServiceError.
func NewResourceBookingServiceError(operation, message string, err error) *ResourceBookingServiceError {
	return &ResourceBookingServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
