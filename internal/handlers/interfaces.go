package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
	"github.com/phrazzld/taas-events/internal/service/auth"
	"github.com/phrazzld/taas-events/internal/store"
)

// JobCandidateFinder selects job candidates.
type JobCandidateFinder interface {
	FindAll(ctx context.Context, filter store.JobCandidateFilter) ([]*domain.JobCandidate, error)
}

// ResourceBookingFinder selects resource bookings.
type ResourceBookingFinder interface {
	FindAll(ctx context.Context, filter store.ResourceBookingFilter) ([]*domain.ResourceBooking, error)
}

// JobCandidateUpdater applies partial updates to job candidates.
type JobCandidateUpdater interface {
	PartiallyUpdateJobCandidate(
		ctx context.Context,
		identity auth.Identity,
		id uuid.UUID,
		patch domain.JobCandidatePatch,
	) (*domain.JobCandidate, error)
}

// ResourceBookingUpdater applies partial updates to resource bookings.
type ResourceBookingUpdater interface {
	PartiallyUpdateResourceBooking(
		ctx context.Context,
		identity auth.Identity,
		id uuid.UUID,
		patch domain.ResourceBookingPatch,
	) (*domain.ResourceBooking, error)
}
