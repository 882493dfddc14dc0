package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
)

// JobCandidateStore defines the interface for job candidate persistence.
type JobCandidateStore interface {
	// FindAll returns every candidate matching filter, in no particular order.
	FindAll(ctx context.Context, filter JobCandidateFilter) ([]*domain.JobCandidate, error)

	// GetByID retrieves a candidate by id, including soft-deleted rows.
	// Inside a transaction the row is locked until commit.
	// Returns ErrJobCandidateNotFound if no row exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobCandidate, error)

	// Update persists the mutable fields of c.
	// Returns ErrJobCandidateNotFound if no active row was updated.
	Update(ctx context.Context, c *domain.JobCandidate) error

	// WithTx returns a store bound to tx.
	WithTx(tx *sql.Tx) JobCandidateStore
}
