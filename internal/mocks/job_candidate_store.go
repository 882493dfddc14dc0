package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
	"github.com/phrazzld/taas-events/internal/store"
)

// JobCandidateStore is an in-memory store.JobCandidateStore.
type JobCandidateStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.JobCandidate

	// FindAllErr, when set, is returned by FindAll.
	FindAllErr error
	findCalls  int
}

// NewJobCandidateStore creates a store holding copies of candidates.
func NewJobCandidateStore(candidates ...*domain.JobCandidate) *JobCandidateStore {
	s := &JobCandidateStore{rows: make(map[uuid.UUID]domain.JobCandidate, len(candidates))}
	for _, c := range candidates {
		s.rows[c.ID] = *c
	}
	return s
}

// FindAll implements store.JobCandidateStore.FindAll.
func (s *JobCandidateStore) FindAll(ctx context.Context, filter store.JobCandidateFilter) ([]*domain.JobCandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.findCalls++
	if s.FindAllErr != nil {
		return nil, s.FindAllErr
	}

	var out []*domain.JobCandidate
	for _, row := range s.rows {
		if filter.Matches(&row) {
			c := row
			out = append(out, &c)
		}
	}
	return out, nil
}

// GetByID implements store.JobCandidateStore.GetByID.
func (s *JobCandidateStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobCandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, store.ErrJobCandidateNotFound
	}
	return &row, nil
}

// Update implements store.JobCandidateStore.Update.
func (s *JobCandidateStore) Update(ctx context.Context, c *domain.JobCandidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[c.ID]
	if !ok || !row.IsActive() {
		return store.ErrJobCandidateNotFound
	}
	s.rows[c.ID] = *c
	return nil
}

// WithTx implements store.JobCandidateStore.WithTx. The in-memory store has
// no transactions; it returns itself.
func (s *JobCandidateStore) WithTx(tx *sql.Tx) store.JobCandidateStore {
	return s
}

// Get returns a copy of the stored candidate, or nil.
func (s *JobCandidateStore) Get(id uuid.UUID) *domain.JobCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil
	}
	return &row
}

// FindCalls returns how many times FindAll was called.
func (s *JobCandidateStore) FindCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findCalls
}

var _ store.JobCandidateStore = (*JobCandidateStore)(nil)
