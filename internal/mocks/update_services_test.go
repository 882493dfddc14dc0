package mocks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
	"github.com/phrazzld/taas-events/internal/service/auth"
	"github.com/phrazzld/taas-events/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCandidateService_PersistsToStore(t *testing.T) {
	c := &domain.JobCandidate{
		ID: uuid.New(), JobID: uuid.New(), UserID: uuid.New(),
		Status: domain.JobCandidateStatusOpen, CreatedBy: uuid.New(), CreatedAt: time.Now(),
	}
	s := NewJobCandidateStore(c)
	svc := NewJobCandidateService(s)

	updated, err := svc.PartiallyUpdateJobCandidate(context.Background(), auth.SystemIdentity(), c.ID,
		domain.JobCandidateStatusPatch(domain.JobCandidateStatusRejected))

	require.NoError(t, err)
	assert.Equal(t, domain.JobCandidateStatusRejected, updated.Status)
	assert.Equal(t, domain.JobCandidateStatusRejected, s.Get(c.ID).Status)
	assert.Equal(t, domain.JobCandidateStatusOpen, c.Status, "seed row is copied")
	require.Len(t, svc.Calls(), 1)

	found, err := s.FindAll(context.Background(), store.JobCandidateFilter{
		JobID:       c.JobID,
		StatusNotIn: []domain.JobCandidateStatus{domain.JobCandidateStatusRejected},
	})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestJobCandidateService_FailOnAndConcurrency(t *testing.T) {
	svc := NewJobCandidateService(nil)
	failing := uuid.New()
	svc.FailOn[failing] = errors.New("boom")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.PartiallyUpdateJobCandidate(context.Background(), auth.SystemIdentity(), uuid.New(),
				domain.JobCandidateStatusPatch(domain.JobCandidateStatusPlaced))
		}()
	}
	wg.Wait()

	_, err := svc.PartiallyUpdateJobCandidate(context.Background(), auth.SystemIdentity(), failing,
		domain.JobCandidateStatusPatch(domain.JobCandidateStatusPlaced))
	assert.EqualError(t, err, "boom")
	assert.Len(t, svc.Calls(), 21)

	svc.Reset()
	assert.Empty(t, svc.Calls())
}

func TestResourceBookingService_MissingRow(t *testing.T) {
	svc := NewResourceBookingService(NewResourceBookingStore())

	_, err := svc.PartiallyUpdateResourceBooking(context.Background(), auth.SystemIdentity(), uuid.New(),
		domain.ResourceBookingStatusPatch(domain.ResourceBookingStatusCancelled))

	assert.ErrorIs(t, err, store.ErrResourceBookingNotFound)
	assert.Len(t, svc.Calls(), 1)
}
