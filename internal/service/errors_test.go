package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceErrors(t *testing.T) {
	cause := errors.New("database connection failed")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "job candidate with cause",
			err:      NewJobCandidateServiceError("partially_update_job_candidate", "failed to save", cause),
			expected: "job candidate service partially_update_job_candidate failed: failed to save: database connection failed",
		},
		{
			name:     "job candidate without cause",
			err:      NewJobCandidateServiceError("partially_update_job_candidate", "failed to save", nil),
			expected: "job candidate service partially_update_job_candidate failed: failed to save",
		},
		{
			name:     "resource booking with cause",
			err:      NewResourceBookingServiceError("partially_update_resource_booking", "failed to load", cause),
			expected: "resource booking service partially_update_resource_booking failed: failed to load: database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}

	assert.ErrorIs(t, NewJobCandidateServiceError("op", "msg", cause), cause)
	assert.ErrorIs(t, NewResourceBookingServiceError("op", "msg", cause), cause)
}
