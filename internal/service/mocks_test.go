package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
	"github.com/phrazzld/taas-events/internal/events"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockJobCandidateRepository mocks the JobCandidateRepository interface.
type MockJobCandidateRepository struct {
	mock.Mock
	db *sql.DB
}

func (m *MockJobCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobCandidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobCandidate), args.Error(1)
}

func (m *MockJobCandidateRepository) Update(ctx context.Context, c *domain.JobCandidate) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockJobCandidateRepository) WithTx(tx *sql.Tx) JobCandidateRepository {
	return m
}

func (m *MockJobCandidateRepository) DB() *sql.DB {
	return m.db
}

// MockResourceBookingRepository mocks the ResourceBookingRepository interface.
type MockResourceBookingRepository struct {
	mock.Mock
	db *sql.DB
}

func (m *MockResourceBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ResourceBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResourceBooking), args.Error(1)
}

func (m *MockResourceBookingRepository) Update(ctx context.Context, b *domain.ResourceBooking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockResourceBookingRepository) WithTx(tx *sql.Tx) ResourceBookingRepository {
	return m
}

func (m *MockResourceBookingRepository) DB() *sql.DB {
	return m.db
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event *events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) published() []*events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*events.Event(nil), p.events...)
}

// newMockDB returns a sqlmock connection used only for transaction control.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}
