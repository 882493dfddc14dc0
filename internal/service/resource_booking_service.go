package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
	"github.com/phrazzld/taas-events/internal/platform/logger"
	"github.com/phrazzld/taas-events/internal/service/auth"
	"github.com/phrazzld/taas-events/internal/store"
)

const opPartiallyUpdateResourceBooking = "partially_update_resource_booking"

// ResourceBookingService updates resource bookings.
type ResourceBookingService interface {
	// PartiallyUpdateResourceBooking applies patch to the booking with id on
	// behalf of identity and returns the updated booking.
	PartiallyUpdateResourceBooking(
		ctx context.Context,
		identity auth.Identity,
		id uuid.UUID,
		patch domain.ResourceBookingPatch,
	) (*domain.ResourceBooking, error)
}

type resourceBookingServiceImpl struct {
	repo   ResourceBookingRepository
	opts   options
	logger *slog.Logger
}

// NewResourceBookingService creates a ResourceBookingService.
func NewResourceBookingService(
	repo ResourceBookingRepository,
	logger *slog.Logger,
	opts ...Option,
) (ResourceBookingService, error) {
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

	return &resourceBookingServiceImpl{
		repo:   repo,
		opts:   o,
		logger: logger.With(slog.String("component", "resource_booking_service")),
	}, nil
}

// PartiallyUpdateResourceBooking implements ResourceBookingService.
func (s *resourceBookingServiceImpl) PartiallyUpdateResourceBooking(
	ctx context.Context,
	identity auth.Identity,
	id uuid.UUID,
	patch domain.ResourceBookingPatch,
) (*domain.ResourceBooking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("resource_booking_id", id.String()),
		slog.String("handle", identity.Handle))

	if !identity.Can(auth.ScopeUpdateResourceBooking, auth.ScopeAllResourceBooking) {
		log.Warn("identity may not update resource bookings")
		return nil, NewResourceBookingServiceError(opPartiallyUpdateResourceBooking,
			"identity lacks update permission", auth.ErrForbidden)
	}

	if err := patch.Validate(); err != nil {
		return nil, NewResourceBookingServiceError(opPartiallyUpdateResourceBooking, "invalid patch", err)
	}

	var updated *domain.ResourceBooking
	err := store.RunInTransaction(ctx, s.repo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txRepo := s.repo.WithTx(tx)

		booking, err := txRepo.GetByID(ctx, id)
		if err != nil {
			if store.IsNotFoundError(err) {
				return NewResourceBookingServiceError(opPartiallyUpdateResourceBooking,
					"resource booking not found", store.ErrResourceBookingNotFound)
			}
			log.Error("failed to load resource booking", slog.String("error", err.Error()))
			return NewResourceBookingServiceError(opPartiallyUpdateResourceBooking,
				"failed to load resource booking", err)
		}

		if err := patch.Apply(booking, identity.UserID, s.opts.now()); err != nil {
			return NewResourceBookingServiceError(opPartiallyUpdateResourceBooking,
				"patch cannot be applied", err)
		}

		if err := txRepo.Update(ctx, booking); err != nil {
			log.Error("failed to save resource booking", slog.String("error", err.Error()))
			return NewResourceBookingServiceError(opPartiallyUpdateResourceBooking,
				"failed to save resource booking", err)
		}

		updated = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("resource booking updated", slog.String("status", string(updated.Status)))
	publishUpdate(ctx, log, s.opts, updated.ID, updated)
	return updated, nil
}
