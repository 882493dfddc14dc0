package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
	"github.com/phrazzld/taas-events/internal/events"
	"github.com/phrazzld/taas-events/internal/platform/logger"
	"github.com/phrazzld/taas-events/internal/service/auth"
	"github.com/phrazzld/taas-events/internal/store"
)

const opPartiallyUpdateJobCandidate = "partially_update_job_candidate"

// JobCandidateService updates job candidates.
type JobCandidateService interface {
	// PartiallyUpdateJobCandidate applies patch to the candidate with id on
	// behalf of identity and returns the updated candidate.
	PartiallyUpdateJobCandidate(
		ctx context.Context,
		identity auth.Identity,
		id uuid.UUID,
		patch domain.JobCandidatePatch,
	) (*domain.JobCandidate, error)
}

type jobCandidateServiceImpl struct {
	repo   JobCandidateRepository
	opts   options
	logger *slog.Logger
}

// NewJobCandidateService creates a JobCandidateService.
func NewJobCandidateService(
	repo JobCandidateRepository,
	logger *slog.Logger,
	opts ...Option,
) (JobCandidateService, error) {
	if repo == nil {
		return nil, domain.NewValidationError("repo", "cannot be nil", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &jobCandidateServiceImpl{
		repo:   repo,
		opts:   o,
		logger: logger.With(slog.String("component", "job_candidate_service")),
	}, nil
}

// PartiallyUpdateJobCandidate implements JobCandidateService.
func (s *jobCandidateServiceImpl) PartiallyUpdateJobCandidate(
	ctx context.Context,
	identity auth.Identity,
	id uuid.UUID,
	patch domain.JobCandidatePatch,
) (*domain.JobCandidate, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("job_candidate_id", id.String()),
		slog.String("handle", identity.Handle))

	if !identity.Can(auth.ScopeUpdateJobCandidate, auth.ScopeAllJobCandidate) {
		log.Warn("identity may not update job candidates")
		return nil, NewJobCandidateServiceError(opPartiallyUpdateJobCandidate,
			"identity lacks update permission", auth.ErrForbidden)
	}

	if err := patch.Validate(); err != nil {
		return nil, NewJobCandidateServiceError(opPartiallyUpdateJobCandidate, "invalid patch", err)
	}

	var updated *domain.JobCandidate
	err := store.RunInTransaction(ctx, s.repo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txRepo := s.repo.WithTx(tx)

		candidate, err := txRepo.GetByID(ctx, id)
		if err != nil {
			if store.IsNotFoundError(err) {
				return NewJobCandidateServiceError(opPartiallyUpdateJobCandidate,
					"job candidate not found", store.ErrJobCandidateNotFound)
			}
			log.Error("failed to load job candidate", slog.String("error", err.Error()))
			return NewJobCandidateServiceError(opPartiallyUpdateJobCandidate,
				"failed to load job candidate", err)
		}

		if err := patch.Apply(candidate, identity.UserID, s.opts.now()); err != nil {
			return NewJobCandidateServiceError(opPartiallyUpdateJobCandidate,
				"patch cannot be applied", err)
		}

		if err := txRepo.Update(ctx, candidate); err != nil {
			log.Error("failed to save job candidate", slog.String("error", err.Error()))
			return NewJobCandidateServiceError(opPartiallyUpdateJobCandidate,
				"failed to save job candidate", err)
		}

		updated = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("job candidate updated", slog.String("status", string(updated.Status)))
	publishUpdate(ctx, log, s.opts, updated.ID, updated)
	return updated, nil
}

// publishUpdate announces a committed update. Failures are logged only: the
// change is already durable and consumers reconcile from the next event.
func publishUpdate(ctx context.Context, log *slog.Logger, o options, id uuid.UUID, entity any) {
	if o.publisher == nil {
		return
	}

	event, err := events.NewEvent(o.topic, o.originator, entity)
	if err != nil {
		log.Error("failed to build update event", slog.String("error", err.Error()))
		return
	}

	if err := o.publisher.Publish(ctx, event); err != nil {
		log.Warn("failed to publish update event",
			slog.String("topic", o.topic),
			slog.String("entity_id", id.String()),
			slog.String("error", err.Error()))
	}
}
