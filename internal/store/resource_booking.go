package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
)

// ResourceBookingStore defines the interface for resource booking persistence.
type ResourceBookingStore interface {
	// FindAll returns every booking matching filter, in no particular order.
	FindAll(ctx context.Context, filter ResourceBookingFilter) ([]*domain.ResourceBooking, error)

	// GetByID retrieves a booking by id, including soft-deleted rows.
	// Inside a transaction the row is locked until commit.
	// Returns ErrResourceBookingNotFound if no row exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ResourceBooking, error)

	// Update persists the mutable fields of b.
	// Returns ErrResourceBookingNotFound if no active row was updated.
	Update(ctx context.Context, b *domain.ResourceBooking) error

	// WithTx returns a store bound to tx.
	WithTx(tx *sql.Tx) ResourceBookingStore
}
