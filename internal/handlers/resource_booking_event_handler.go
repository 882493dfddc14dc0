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

// ResourceBookingPayload is the part of a ResourceBooking update event the
// handler reads.
type ResourceBookingPayload struct {
	ID     uuid.UUID                    `json:"id"`
	UserID uuid.UUID                    `json:"userId"`
	JobID  *uuid.UUID                   `json:"jobId"`
	Status domain.ResourceBookingStatus `json:"status"`
}

// ResourceBookingEventHandler places the booked member on the job: when a
// booking tied to a job becomes assigned, the member's active candidacies for
// that job move to placed.
type ResourceBookingEventHandler struct {
	candidates JobCandidateFinder
	updater    JobCandidateUpdater
	identities auth.Provider
	logger     *slog.Logger
}

// NewResourceBookingEventHandler creates a ResourceBookingEventHandler. If
// logger is nil, the default logger is used.
func NewResourceBookingEventHandler(
	candidates JobCandidateFinder,
	updater JobCandidateUpdater,
	identities auth.Provider,
	logger *slog.Logger,
) (*ResourceBookingEventHandler, error) {
	switch {
	case candidates == nil:
		return nil, fmt.Errorf("%w: candidates", ErrMissingDependency)
	case updater == nil:
		return nil, fmt.Errorf("%w: updater", ErrMissingDependency)
	case identities == nil:
		return nil, fmt.Errorf("%w: identities", ErrMissingDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ResourceBookingEventHandler{
		candidates: candidates,
		updater:    updater,
		identities: identities,
		logger: logger.With(
			slog.String("component", "resource_booking_event_handler"),
			slog.String("context", "processUpdate"),
		),
	}, nil
}

// ProcessUpdate handles a ResourceBooking update event. It has the
// events.HandlerFunc signature.
func (h *ResourceBookingEventHandler) ProcessUpdate(ctx context.Context, payload events.Payload) error {
	status, err := decodeStatus[domain.ResourceBookingStatus](payload, "resource booking")
	if err != nil {
		return err
	}

	log := logger.FromContextOrDefault(ctx, h.logger)
	if status != domain.ResourceBookingStatusAssigned {
		log.Info("not interested resource booking", slog.String("status", string(status)))
		return nil
	}

	var booking ResourceBookingPayload
	if err := payload.Decode(&booking); err != nil {
		return fmt.Errorf("%w: resource booking: %v", ErrInvalidPayload, err)
	}
	if booking.JobID == nil || *booking.JobID == uuid.Nil {
		log.Info("not interested resource booking without job",
			slog.String("resource_booking_id", booking.ID.String()))
		return nil
	}
	if booking.UserID == uuid.Nil {
		return fmt.Errorf("%w: assigned booking without user id", ErrInvalidPayload)
	}

	log = log.With(
		slog.String("resource_booking_id", booking.ID.String()),
		slog.String("job_id", booking.JobID.String()))

	candidates, err := h.candidates.FindAll(ctx, store.JobCandidateFilter{
		JobID:       *booking.JobID,
		UserID:      booking.UserID,
		StatusNotIn: []domain.JobCandidateStatus{
			domain.JobCandidateStatusPlaced,
			domain.JobCandidateStatusRejected,
			domain.JobCandidateStatusCancelled,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to find candidates of job %s: %w", *booking.JobID, err)
	}

	identity := h.identities.SystemIdentity()
	place := domain.JobCandidateStatusPatch(domain.JobCandidateStatusPlaced)

	ops := make([]func(context.Context) error, 0, len(candidates))
	for _, c := range candidates {
		ops = append(ops, func(ctx context.Context) error {
			updated, err := h.updater.PartiallyUpdateJobCandidate(ctx, identity, c.ID, place)
			if err != nil {
				log.Error("failed to place job candidate",
					slog.String("job_candidate_id", c.ID.String()),
					slog.String("error", redact.Error(err)))
				return err
			}
			log.Info("job candidate placed",
				slog.String("job_candidate_id", updated.ID.String()),
				slog.String("status", string(updated.Status)))
			return nil
		})
	}

	return fanOut(ctx, ops...)
}
