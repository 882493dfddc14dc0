package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ResourceBookingStatus is the state of a member's booking on a project.
type ResourceBookingStatus string

// Possible resource booking status values
const (
	ResourceBookingStatusSourcing  ResourceBookingStatus = "sourcing"
	ResourceBookingStatusInReview  ResourceBookingStatus = "in-review"
	ResourceBookingStatusAssigned  ResourceBookingStatus = "assigned"
	ResourceBookingStatusBooked    ResourceBookingStatus = "booked"
	ResourceBookingStatusClosed    ResourceBookingStatus = "closed"
	ResourceBookingStatusCancelled ResourceBookingStatus = "cancelled"
)

// RateType is the billing period of a booking's rates.
type RateType string

// Possible rate types
const (
	RateTypeHourly  RateType = "hourly"
	RateTypeDaily   RateType = "daily"
	RateTypeWeekly  RateType = "weekly"
	RateTypeMonthly RateType = "monthly"
)

// Resource booking validation errors
var (
	ErrResourceBookingIDEmpty     = errors.New("resource booking ID cannot be empty")
	ErrResourceBookingUserIDEmpty = errors.New("resource booking user ID cannot be empty")
	ErrResourceBookingProjectID   = errors.New("resource booking project ID must be positive")
	ErrResourceBookingDateRange   = errors.New("resource booking end date is before start date")
)

// ResourceBooking books a member onto a project. It is tied to a Job only
// through the shared ProjectID (JobID is optional). Rows are soft-deleted.
type ResourceBooking struct {
	ID           uuid.UUID             `json:"id"`
	ProjectID    int64                 `json:"projectId"`
	UserID       uuid.UUID             `json:"userId"`
	JobID        *uuid.UUID            `json:"jobId,omitempty"`
	Status       ResourceBookingStatus `json:"status" validate:"oneof=sourcing in-review assigned booked closed cancelled"`
	StartDate    *time.Time            `json:"startDate,omitempty"`
	EndDate      *time.Time            `json:"endDate,omitempty"`
	MemberRate   *float64              `json:"memberRate,omitempty" validate:"omitempty,gte=0"`
	CustomerRate *float64              `json:"customerRate,omitempty" validate:"omitempty,gte=0"`
	RateType     RateType              `json:"rateType" validate:"oneof=hourly daily weekly monthly"`
	CreatedBy    uuid.UUID             `json:"createdBy"`
	UpdatedBy    *uuid.UUID            `json:"updatedBy,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    *time.Time            `json:"updatedAt,omitempty"`
	DeletedAt    *time.Time            `json:"deletedAt,omitempty"`
}

// IsActive reports whether the booking has not been soft-deleted.
func (b *ResourceBooking) IsActive() bool {
	return b.DeletedAt == nil
}

// Validate checks if the ResourceBooking has valid data.
func (b *ResourceBooking) Validate() error {
	if b.ID == uuid.Nil {
		return ErrResourceBookingIDEmpty
	}
	if b.UserID == uuid.Nil {
		return ErrResourceBookingUserIDEmpty
	}
	if b.ProjectID <= 0 {
		return ErrResourceBookingProjectID
	}
	if b.StartDate != nil && b.EndDate != nil && b.EndDate.Before(*b.StartDate) {
		return ErrResourceBookingDateRange
	}
	return validateStruct(b)
}

// ResourceBookingPatch is a partial update: nil fields are left unchanged.
type ResourceBookingPatch struct {
	Status       *ResourceBookingStatus `json:"status,omitempty" validate:"omitempty,oneof=sourcing in-review assigned booked closed cancelled"`
	StartDate    *time.Time             `json:"startDate,omitempty"`
	EndDate      *time.Time             `json:"endDate,omitempty"`
	MemberRate   *float64               `json:"memberRate,omitempty" validate:"omitempty,gte=0"`
	CustomerRate *float64               `json:"customerRate,omitempty" validate:"omitempty,gte=0"`
	RateType     *RateType              `json:"rateType,omitempty" validate:"omitempty,oneof=hourly daily weekly monthly"`
}

// ResourceBookingStatusPatch builds a patch that only changes the status.
func ResourceBookingStatusPatch(status ResourceBookingStatus) ResourceBookingPatch {
	return ResourceBookingPatch{Status: &status}
}

// IsEmpty reports whether the patch carries no fields.
func (p ResourceBookingPatch) IsEmpty() bool {
	return p.Status == nil && p.StartDate == nil && p.EndDate == nil &&
		p.MemberRate == nil && p.CustomerRate == nil && p.RateType == nil
}

// Validate checks the patch in isolation.
func (p ResourceBookingPatch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	return validateStruct(p)
}

// Apply copies the set fields of p onto b and stamps the update metadata.
// The result is validated; on failure b is left unchanged.
func (p ResourceBookingPatch) Apply(b *ResourceBooking, updatedBy uuid.UUID, now time.Time) error {
	if !b.IsActive() {
		return ErrDeleted
	}

	next := *b
	if p.Status != nil {
		next.Status = *p.Status
	}
	if p.StartDate != nil {
		next.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		next.EndDate = p.EndDate
	}
	if p.MemberRate != nil {
		next.MemberRate = p.MemberRate
	}
	if p.CustomerRate != nil {
		next.CustomerRate = p.CustomerRate
	}
	if p.RateType != nil {
		next.RateType = *p.RateType
	}
	next.UpdatedBy = &updatedBy
	next.UpdatedAt = &now

	if err := next.Validate(); err != nil {
		return err
	}
	*b = next
	return nil
}
