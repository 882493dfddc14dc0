package store

import (
	"slices"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
)

// JobCandidateFilter selects job candidates. Zero-valued fields do not
// constrain the result. Soft-deleted rows are excluded unless IncludeDeleted
// is set.
type JobCandidateFilter struct {
	JobID          uuid.UUID
	UserID         uuid.UUID
	Statuses       []domain.JobCandidateStatus
	StatusNotIn    []domain.JobCandidateStatus
	IncludeDeleted bool
}

// Matches reports whether c satisfies the filter.
func (f JobCandidateFilter) Matches(c *domain.JobCandidate) bool {
	if !f.IncludeDeleted && !c.IsActive() {
		return false
	}
	if f.JobID != uuid.Nil && c.JobID != f.JobID {
		return false
	}
	if f.UserID != uuid.Nil && c.UserID != f.UserID {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, c.Status) {
		return false
	}
	return !slices.Contains(f.StatusNotIn, c.Status)
}

// ResourceBookingFilter selects resource bookings. Zero-valued fields do not
// constrain the result. Soft-deleted rows are excluded unless IncludeDeleted
// is set.
type ResourceBookingFilter struct {
	ProjectID      int64
	JobID          uuid.UUID
	UserID         uuid.UUID
	Statuses       []domain.ResourceBookingStatus
	StatusNotIn    []domain.ResourceBookingStatus
	IncludeDeleted bool
}

// Matches reports whether b satisfies the filter.
func (f ResourceBookingFilter) Matches(b *domain.ResourceBooking) bool {
	if !f.IncludeDeleted && !b.IsActive() {
		return false
	}
	if f.ProjectID != 0 && b.ProjectID != f.ProjectID {
		return false
	}
	if f.JobID != uuid.Nil && (b.JobID == nil || *b.JobID != f.JobID) {
		return false
	}
	if f.UserID != uuid.Nil && b.UserID != f.UserID {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, b.Status) {
		return false
	}
	return !slices.Contains(f.StatusNotIn, b.Status)
}
