package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// JobCandidateStatus is the state of a member's candidacy for a Job.
type JobCandidateStatus string

// Possible job candidate status values
const (
	JobCandidateStatusOpen      JobCandidateStatus = "open"
	JobCandidateStatusSelected  JobCandidateStatus = "selected"
	JobCandidateStatusShortlist JobCandidateStatus = "shortlist"
	JobCandidateStatusInterview JobCandidateStatus = "interview"
	JobCandidateStatusRejected  JobCandidateStatus = "rejected"
	JobCandidateStatusCancelled JobCandidateStatus = "cancelled"
	JobCandidateStatusPlaced    JobCandidateStatus = "placed"
)

// Job candidate validation errors
var (
	ErrJobCandidateIDEmpty     = errors.New("job candidate ID cannot be empty")
	ErrJobCandidateJobIDEmpty  = errors.New("job candidate job ID cannot be empty")
	ErrJobCandidateUserIDEmpty = errors.New("job candidate user ID cannot be empty")
)

// JobCandidate links a member to a Job. Rows are soft-deleted: DeletedAt is
// nil while the candidate is active.
type JobCandidate struct {
	ID         uuid.UUID          `json:"id"`
	JobID      uuid.UUID          `json:"jobId"`
	UserID     uuid.UUID          `json:"userId"`
	Status     JobCandidateStatus `json:"status" validate:"oneof=open selected shortlist interview rejected cancelled placed"`
	ExternalID *string            `json:"externalId,omitempty" validate:"omitempty,max=255"`
	Resume     *string            `json:"resume,omitempty" validate:"omitempty,url"`
	CreatedBy  uuid.UUID          `json:"createdBy"`
	UpdatedBy  *uuid.UUID         `json:"updatedBy,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  *time.Time         `json:"updatedAt,omitempty"`
	DeletedAt  *time.Time         `json:"deletedAt,omitempty"`
}

// IsActive reports whether the candidate has not been soft-deleted.
func (c *JobCandidate) IsActive() bool {
	return c.DeletedAt == nil
}

// Validate checks if the JobCandidate has valid data.
func (c *JobCandidate) Validate() error {
	if c.ID == uuid.Nil {
		return ErrJobCandidateIDEmpty
	}
	if c.JobID == uuid.Nil {
		return ErrJobCandidateJobIDEmpty
	}
	if c.UserID == uuid.Nil {
		return ErrJobCandidateUserIDEmpty
	}
	return validateStruct(c)
}

// JobCandidatePatch is a partial update: nil fields are left unchanged.
type JobCandidatePatch struct {
	Status     *JobCandidateStatus `json:"status,omitempty" validate:"omitempty,oneof=open selected shortlist interview rejected cancelled placed"`
	ExternalID *string             `json:"externalId,omitempty" validate:"omitempty,max=255"`
	Resume     *string             `json:"resume,omitempty" validate:"omitempty,url"`
}

// JobCandidateStatusPatch builds a patch that only changes the status.
func JobCandidateStatusPatch(status JobCandidateStatus) JobCandidatePatch {
	return JobCandidatePatch{Status: &status}
}

// IsEmpty reports whether the patch carries no fields.
func (p JobCandidatePatch) IsEmpty() bool {
	return p.Status == nil && p.ExternalID == nil && p.Resume == nil
}

// Validate checks the patch in isolation.
func (p JobCandidatePatch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	return validateStruct(p)
}

// Apply copies the set fields of p onto c and stamps the update metadata.
// The result is validated; on failure c is left unchanged.
func (p JobCandidatePatch) Apply(c *JobCandidate, updatedBy uuid.UUID, now time.Time) error {
	if !c.IsActive() {
		return ErrDeleted
	}

	next := *c
	if p.Status != nil {
		next.Status = *p.Status
	}
	if p.ExternalID != nil {
		next.ExternalID = p.ExternalID
	}
	if p.Resume != nil {
		next.Resume = p.Resume
	}
	next.UpdatedBy = &updatedBy
	next.UpdatedAt = &now

	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
