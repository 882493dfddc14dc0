package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
	"github.com/phrazzld/taas-events/internal/store"
)

// ResourceBookingStore is an in-memory store.ResourceBookingStore.
type ResourceBookingStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.ResourceBooking

	// FindAllErr, when set, is returned by FindAll.
	FindAllErr error
	findCalls  int
}

// NewResourceBookingStore creates a store holding copies of bookings.
func NewResourceBookingStore(bookings ...*domain.ResourceBooking) *ResourceBookingStore {
	s := &ResourceBookingStore{rows: make(map[uuid.UUID]domain.ResourceBooking, len(bookings))}
	for _, b := range bookings {
		s.rows[b.ID] = *b
	}
	return s
}

// FindAll implements store.ResourceBookingStore.FindAll.
func (s *ResourceBookingStore) FindAll(ctx context.Context, filter store.ResourceBookingFilter) ([]*domain.ResourceBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.findCalls++
	if s.FindAllErr != nil {
		return nil, s.FindAllErr
	}

	var out []*domain.ResourceBooking
	for _, row := range s.rows {
		if filter.Matches(&row) {
			b := row
			out = append(out, &b)
		}
	}
	return out, nil
}

// GetByID implements store.ResourceBookingStore.GetByID.
func (s *ResourceBookingStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ResourceBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, store.ErrResourceBookingNotFound
	}
	return &row, nil
}

// Update implements store.ResourceBookingStore.Update.
func (s *ResourceBookingStore) Update(ctx context.Context, b *domain.ResourceBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[b.ID]
	if !ok || !row.IsActive() {
		return store.ErrResourceBookingNotFound
	}
	s.rows[b.ID] = *b
	return nil
}

// WithTx implements store.ResourceBookingStore.WithTx and returns the store
// itself.
func (s *ResourceBookingStore) WithTx(tx *sql.Tx) store.ResourceBookingStore {
	return s
}

// Get returns a copy of the stored booking, or nil.
func (s *ResourceBookingStore) Get(id uuid.UUID) *domain.ResourceBooking {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil
	}
	return &row
}

// FindCalls returns how many times FindAll was called.
func (s *ResourceBookingStore) FindCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findCalls
}

var _ store.ResourceBookingStore = (*ResourceBookingStore)(nil)
