package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
	"github.com/phrazzld/taas-events/internal/store"
)

// JobCandidateRepository is the persistence surface used by JobCandidateService.
type JobCandidateRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobCandidate, error)
	Update(ctx context.Context, c *domain.JobCandidate) error

	// WithTx returns a repository bound to tx.
	WithTx(tx *sql.Tx) JobCandidateRepository

	// DB returns the connection transactions are started on.
	DB() *sql.DB
}

// ResourceBookingRepository is the persistence surface used by
// ResourceBookingService.
type ResourceBookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ResourceBooking, error)
	Update(ctx context.Context, b *domain.ResourceBooking) error
	WithTx(tx *sql.Tx) ResourceBookingRepository
	DB() *sql.DB
}

// NewJobCandidateRepositoryAdapter lets a store.JobCandidateStore be used
// where a JobCandidateRepository is expected.
func NewJobCandidateRepositoryAdapter(s store.JobCandidateStore, db *sql.DB) JobCandidateRepository {
	return &jobCandidateRepositoryAdapter{store: s, db: db}
}

type jobCandidateRepositoryAdapter struct {
	store store.JobCandidateStore
	db    *sql.DB
}

func (a *jobCandidateRepositoryAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobCandidate, error) {
	return a.store.GetByID(ctx, id)
}

func (a *jobCandidateRepositoryAdapter) Update(ctx context.Context, c *domain.JobCandidate) error {
	return a.store.Update(ctx, c)
}

func (a *jobCandidateRepositoryAdapter) WithTx(tx *sql.Tx) JobCandidateRepository {
	return &jobCandidateRepositoryAdapter{store: a.store.WithTx(tx), db: a.db}
}

func (a *jobCandidateRepositoryAdapter) DB() *sql.DB {
	return a.db
}

// NewResourceBookingRepositoryAdapter lets a store.ResourceBookingStore be
// used where a ResourceBookingRepository is expected.
func NewResourceBookingRepositoryAdapter(s store.ResourceBookingStore, db *sql.DB) ResourceBookingRepository {
	return &resourceBookingRepositoryAdapter{store: s, db: db}
}

type resourceBookingRepositoryAdapter struct {
	store store.ResourceBookingStore
	db    *sql.DB
}

func (a *resourceBookingRepositoryAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.ResourceBooking, error) {
	return a.store.GetByID(ctx, id)
}

func (a *resourceBookingRepositoryAdapter) Update(ctx context.Context, b *domain.ResourceBooking) error {
	return a.store.Update(ctx, b)
}

func (a *resourceBookingRepositoryAdapter) WithTx(tx *sql.Tx) ResourceBookingRepository {
	return &resourceBookingRepositoryAdapter{store: a.store.WithTx(tx), db: a.db}
}

func (a *resourceBookingRepositoryAdapter) DB() *sql.DB {
	return a.db
}
