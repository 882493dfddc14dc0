package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCandidate() *JobCandidate {
	return &JobCandidate{
		ID:        uuid.New(),
		JobID:     uuid.New(),
		UserID:    uuid.New(),
		Status:    JobCandidateStatusOpen,
		CreatedBy: uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}

func TestJobCandidate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *JobCandidate)
		wantErr error
	}{
		{"valid", func(c *JobCandidate) {}, nil},
		{"empty id", func(c *JobCandidate) { c.ID = uuid.Nil }, ErrJobCandidateIDEmpty},
		{"empty job id", func(c *JobCandidate) { c.JobID = uuid.Nil }, ErrJobCandidateJobIDEmpty},
		{"empty user id", func(c *JobCandidate) { c.UserID = uuid.Nil }, ErrJobCandidateUserIDEmpty},
		{"unknown status", func(c *JobCandidate) { c.Status = "hired" }, ErrInvalidStatus},
		{"bad resume url", func(c *JobCandidate) {
			r := "not a url"
			c.Resume = &r
		}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCandidate()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJobCandidatePatch_Validate(t *testing.T) {
	assert.ErrorIs(t, JobCandidatePatch{}.Validate(), ErrEmptyPatch)
	assert.NoError(t, JobCandidateStatusPatch(JobCandidateStatusRejected).Validate())

	err := JobCandidateStatusPatch("bogus").Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "status", ve.Field)
}

func TestJobCandidatePatch_Apply(t *testing.T) {
	actor := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("status change stamps metadata", func(t *testing.T) {
		c := newTestCandidate()
		err := JobCandidateStatusPatch(JobCandidateStatusRejected).Apply(c, actor, now)
		require.NoError(t, err)
		assert.Equal(t, JobCandidateStatusRejected, c.Status)
		require.NotNil(t, c.UpdatedBy)
		assert.Equal(t, actor, *c.UpdatedBy)
		require.NotNil(t, c.UpdatedAt)
		assert.Equal(t, now, *c.UpdatedAt)
	})

	t.Run("nil fields are untouched", func(t *testing.T) {
		c := newTestCandidate()
		ext := "ext-1"
		c.ExternalID = &ext
		require.NoError(t, JobCandidateStatusPatch(JobCandidateStatusSelected).Apply(c, actor, now))
		require.NotNil(t, c.ExternalID)
		assert.Equal(t, "ext-1", *c.ExternalID)
	})

	t.Run("invalid result leaves candidate unchanged", func(t *testing.T) {
		c := newTestCandidate()
		before := *c
		err := JobCandidateStatusPatch("bogus").Apply(c, actor, now)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Equal(t, before, *c)
	})

	t.Run("deleted candidate is rejected", func(t *testing.T) {
		c := newTestCandidate()
		deleted := now.Add(-time.Hour)
		c.DeletedAt = &deleted
		assert.False(t, c.IsActive())
		err := JobCandidateStatusPatch(JobCandidateStatusRejected).Apply(c, actor, now)
		assert.ErrorIs(t, err, ErrDeleted)
		assert.Equal(t, JobCandidateStatusOpen, c.Status)
	})
}
