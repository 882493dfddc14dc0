package domain

import "github.com/google/uuid"

// JobStatus is the lifecycle state of a Job.
type JobStatus string

// Possible job status values
const (
	JobStatusSourcing  JobStatus = "sourcing"
	JobStatusInReview  JobStatus = "in-review"
	JobStatusAssigned  JobStatus = "assigned"
	JobStatusClosed    JobStatus = "closed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Job is an open position within a customer project. The event service never
// writes jobs; it only observes their update events.
type Job struct {
	ID        uuid.UUID `json:"id"`
	ProjectID int64     `json:"projectId"`
	Title     string    `json:"title,omitempty"`
	Status    JobStatus `json:"status"`
}

// IsCancelled reports whether the job has been cancelled.
func (j Job) IsCancelled() bool {
	return j.Status == JobStatusCancelled
}
