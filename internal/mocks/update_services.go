package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
	"github.com/phrazzld/taas-events/internal/service/auth"
)

// JobCandidateUpdate records one PartiallyUpdateJobCandidate call.
type JobCandidateUpdate struct {
	Identity auth.Identity
	ID       uuid.UUID
	Patch    domain.JobCandidatePatch
}

// JobCandidateService mocks the job candidate update service.
//
// Resolution order for each call: FailOn, then PartiallyUpdateJobCandidateFn,
// then the backing Store. Every call is recorded, including failing ones.
type JobCandidateService struct {
	PartiallyUpdateJobCandidateFn func(
		ctx context.Context,
		identity auth.Identity,
		id uuid.UUID,
		patch domain.JobCandidatePatch,
	) (*domain.JobCandidate, error)

	// FailOn maps candidate ids to the error returned for them.
	FailOn map[uuid.UUID]error

	// Store receives the patched candidate when no Fn is set.
	Store *JobCandidateStore

	mu    sync.Mutex
	calls []JobCandidateUpdate
}

// NewJobCandidateService creates a mock that applies patches to s.
func NewJobCandidateService(s *JobCandidateStore) *JobCandidateService {
	return &JobCandidateService{Store: s, FailOn: make(map[uuid.UUID]error)}
}

// PartiallyUpdateJobCandidate implements the update service method.
func (m *JobCandidateService) PartiallyUpdateJobCandidate(
	ctx context.Context,
	identity auth.Identity,
	id uuid.UUID,
	patch domain.JobCandidatePatch,
) (*domain.JobCandidate, error) {
	m.mu.Lock()
	m.calls = append(m.calls, JobCandidateUpdate{Identity: identity, ID: id, Patch: patch})
	failErr := m.FailOn[id]
	m.mu.Unlock()

	if failErr != nil {
		return nil, failErr
	}
	if m.PartiallyUpdateJobCandidateFn != nil {
		return m.PartiallyUpdateJobCandidateFn(ctx, identity, id, patch)
	}
	if m.Store == nil {
		c := &domain.JobCandidate{ID: id}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		return c, nil
	}

	c, err := m.Store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(c, identity.UserID, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := m.Store.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Calls returns the recorded calls.
func (m *JobCandidateService) Calls() []JobCandidateUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]JobCandidateUpdate(nil), m.calls...)
}

// Reset forgets recorded calls.
func (m *JobCandidateService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// ResourceBookingUpdate records one PartiallyUpdateResourceBooking call.
type ResourceBookingUpdate struct {
	Identity auth.Identity
	ID       uuid.UUID
	Patch    domain.ResourceBookingPatch
}

// ResourceBookingService mocks the resource booking update service. It
// resolves calls in the same order as JobCandidateService.
type ResourceBookingService struct {
	PartiallyUpdateResourceBookingFn func(
		ctx context.Context,
		identity auth.Identity,
		id uuid.UUID,
		patch domain.ResourceBookingPatch,
	) (*domain.ResourceBooking, error)

	FailOn map[uuid.UUID]error
	Store  *ResourceBookingStore

	mu    sync.Mutex
	calls []ResourceBookingUpdate
}

// NewResourceBookingService creates a mock that applies patches to s.
func NewResourceBookingService(s *ResourceBookingStore) *ResourceBookingService {
	return &ResourceBookingService{Store: s, FailOn: make(map[uuid.UUID]error)}
}

// PartiallyUpdateResourceBooking implements the update service method.
func (m *ResourceBookingService) PartiallyUpdateResourceBooking(
	ctx context.Context,
	identity auth.Identity,
	id uuid.UUID,
	patch domain.ResourceBookingPatch,
) (*domain.ResourceBooking, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ResourceBookingUpdate{Identity: identity, ID: id, Patch: patch})
	failErr := m.FailOn[id]
	m.mu.Unlock()

	if failErr != nil {
		return nil, failErr
	}
	if m.PartiallyUpdateResourceBookingFn != nil {
		return m.PartiallyUpdateResourceBookingFn(ctx, identity, id, patch)
	}
	if m.Store == nil {
		b := &domain.ResourceBooking{ID: id}
		if patch.Status != nil {
			b.Status = *patch.Status
		}
		return b, nil
	}

	b, err := m.Store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(b, identity.UserID, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := m.Store.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Calls returns the recorded calls.
func (m *ResourceBookingService) Calls() []ResourceBookingUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ResourceBookingUpdate(nil), m.calls...)
}

// Reset forgets recorded calls.
func (m *ResourceBookingService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
