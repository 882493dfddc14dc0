package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
	"github.com/phrazzld/taas-events/internal/events"
	"github.com/phrazzld/taas-events/internal/platform/logger"
	"github.com/phrazzld/taas-events/internal/redact"
	"github.com/phrazzld/taas-events/internal/service/auth"
	"github.com/phrazzld/taas-events/internal/store"
)

// JobPayload is the part of a Job update event the handler reads.
type JobPayload struct {
	ID        uuid.UUID        `json:"id"`
	ProjectID int64            `json:"projectId"`
	Status    domain.JobStatus `json:"status"`
}

// JobEventHandler cascades Job cancellation: active candidates of the job are
// rejected and active bookings of the job's project are cancelled.
type JobEventHandler struct {
	candidates       JobCandidateFinder
	bookings         ResourceBookingFinder
	candidateUpdater JobCandidateUpdater
	bookingUpdater   ResourceBookingUpdater
	identities       auth.Provider
	logger           *slog.Logger
}

// NewJobEventHandler creates a JobEventHandler. If logger is nil, the default
// logger is used.
func NewJobEventHandler(
	candidates JobCandidateFinder,
	bookings ResourceBookingFinder,
	candidateUpdater JobCandidateUpdater,
	bookingUpdater ResourceBookingUpdater,
	identities auth.Provider,
	logger *slog.Logger,
) (*JobEventHandler, error) {
	switch {
	case candidates == nil:
		return nil, fmt.Errorf("%w: candidates", ErrMissingDependency)
	case bookings == nil:
		return nil, fmt.Errorf("%w: bookings", ErrMissingDependency)
	case candidateUpdater == nil:
		return nil, fmt.Errorf("%w: candidateUpdater", ErrMissingDependency)
	case bookingUpdater == nil:
		return nil, fmt.Errorf("%w: bookingUpdater", ErrMissingDependency)
	case identities == nil:
		return nil, fmt.Errorf("%w: identities", ErrMissingDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &JobEventHandler{
		candidates:       candidates,
		bookings:         bookings,
		candidateUpdater: candidateUpdater,
		bookingUpdater:   bookingUpdater,
		identities:       identities,
		logger: logger.With(
			slog.String("component", "job_event_handler"),
			slog.String("context", "processUpdate"),
		),
	}, nil
}

// ProcessUpdate handles a Job update event. It has the events.HandlerFunc
// signature.
func (h *JobEventHandler) ProcessUpdate(ctx context.Context, payload events.Payload) error {
	status, err := decodeStatus[domain.JobStatus](payload, "job")
	if err != nil {
		return err
	}

	log := logger.FromContextOrDefault(ctx, h.logger)
	if status != domain.JobStatusCancelled {
		log.Info("not interested job", slog.String("status", string(status)))
		return nil
	}

	var job JobPayload
	if err := payload.Decode(&job); err != nil {
		return fmt.Errorf("%w: job: %v", ErrInvalidPayload, err)
	}
	if job.ID == uuid.Nil {
		return fmt.Errorf("%w: cancelled job without id", ErrInvalidPayload)
	}

	log = log.With(slog.String("job_id", job.ID.String()), slog.Int64("project_id", job.ProjectID))

	candidates, err := h.candidates.FindAll(ctx, store.JobCandidateFilter{
		JobID:       job.ID,
		StatusNotIn: []domain.JobCandidateStatus{domain.JobCandidateStatusRejected},
	})
	if err != nil {
		return fmt.Errorf("failed to find candidates of job %s: %w", job.ID, err)
	}

	var bookings []*domain.ResourceBooking
	if job.ProjectID != 0 {
		bookings, err = h.bookings.FindAll(ctx, store.ResourceBookingFilter{
			ProjectID:   job.ProjectID,
			StatusNotIn: []domain.ResourceBookingStatus{domain.ResourceBookingStatusCancelled},
		})
		if err != nil {
			return fmt.Errorf("failed to find bookings of project %d: %w", job.ProjectID, err)
		}
	} else {
		log.Warn("cancelled job has no project, skipping resource bookings")
	}

	log.Debug("cascading job cancellation",
		slog.Int("candidates", len(candidates)),
		slog.Int("bookings", len(bookings)))

	identity := h.identities.SystemIdentity()
	reject := domain.JobCandidateStatusPatch(domain.JobCandidateStatusRejected)
	cancel := domain.ResourceBookingStatusPatch(domain.ResourceBookingStatusCancelled)

	ops := make([]func(context.Context) error, 0, len(candidates)+len(bookings))
	for _, c := range candidates {
		ops = append(ops, func(ctx context.Context) error {
			updated, err := h.candidateUpdater.PartiallyUpdateJobCandidate(ctx, identity, c.ID, reject)
			if err != nil {
				log.Error("failed to reject job candidate",
					slog.String("job_candidate_id", c.ID.String()),
					slog.String("error", redact.Error(err)))
				return err
			}
			log.Info("job candidate rejected",
				slog.String("job_candidate_id", updated.ID.String()),
				slog.String("status", string(updated.Status)))
			return nil
		})
	}
	for _, b := range bookings {
		ops = append(ops, func(ctx context.Context) error {
			updated, err := h.bookingUpdater.PartiallyUpdateResourceBooking(ctx, identity, b.ID, cancel)
			if err != nil {
				log.Error("failed to cancel resource booking",
					slog.String("resource_booking_id", b.ID.String()),
					slog.String("error", redact.Error(err)))
				return err
			}
			log.Info("resource booking cancelled",
				slog.String("resource_booking_id", updated.ID.String()),
				slog.String("status", string(updated.Status)))
			return nil
		})
	}

	return fanOut(ctx, ops...)
}
