package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/taas-events/internal/domain"
	"github.com/phrazzld/taas-events/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jobCandidateRowColumns = []string{
	"id", "job_id", "user_id", "status", "external_id", "resume",
	"created_by", "updated_by", "created_at", "updated_at", "deleted_at",
}

func newJobCandidateMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresJobCandidateStore) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock, NewPostgresJobCandidateStore(db, nil)
}

func TestPostgresJobCandidateStore_FindAll(t *testing.T) {
	_, mock, s := newJobCandidateMock(t)

	jobID := uuid.New()
	c1, c2 := uuid.New(), uuid.New()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	resume := "https://example.com/resume.pdf"

	rows := sqlmock.NewRows(jobCandidateRowColumns).
		AddRow(c1.String(), jobID.String(), uuid.NewString(), "open", nil, resume, uuid.NewString(), nil, created, nil, nil).
		AddRow(c2.String(), jobID.String(), uuid.NewString(), "shortlist", "ext-2", nil, uuid.NewString(), uuid.Nil.String(), created, created, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM job_candidates WHERE job_id = $1 AND status NOT IN ($2) AND deleted_at IS NULL")).
		WithArgs(jobID, "rejected").
		WillReturnRows(rows)

	got, err := s.FindAll(context.Background(), store.JobCandidateFilter{
		JobID:       jobID,
		StatusNotIn: []domain.JobCandidateStatus{domain.JobCandidateStatusRejected},
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, c1, got[0].ID)
	assert.Equal(t, domain.JobCandidateStatusOpen, got[0].Status)
	require.NotNil(t, got[0].Resume)
	assert.Equal(t, resume, *got[0].Resume)
	assert.Nil(t, got[0].ExternalID)
	assert.Nil(t, got[0].UpdatedBy)
	assert.True(t, got[0].IsActive())

	assert.Equal(t, c2, got[1].ID)
	require.NotNil(t, got[1].ExternalID)
	assert.Equal(t, "ext-2", *got[1].ExternalID)
	require.NotNil(t, got[1].UpdatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresJobCandidateStore_FindAllQueryError(t *testing.T) {
	_, mock, s := newJobCandidateMock(t)

	mock.ExpectQuery("FROM job_candidates").WillReturnError(errors.New("connection refused"))

	got, err := s.FindAll(context.Background(), store.JobCandidateFilter{})
	assert.Nil(t, got)

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "find_all", storeErr.Operation)
}

func TestPostgresJobCandidateStore_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		_, mock, s := newJobCandidateMock(t)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("FROM job_candidates WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(jobCandidateRowColumns))

		got, err := s.GetByID(context.Background(), id)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, store.ErrJobCandidateNotFound)
	})

	t.Run("locks the row inside a transaction", func(t *testing.T) {
		db, mock, s := newJobCandidateMock(t)
		id := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 FOR UPDATE")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(jobCandidateRowColumns).
				AddRow(id.String(), uuid.NewString(), uuid.NewString(), "open", nil, nil, uuid.NewString(), nil, time.Now(), nil, nil))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)
		got, err := s.WithTx(tx).GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresJobCandidateStore_Update(t *testing.T) {
	now := time.Now().UTC()
	actor := uuid.Nil
	c := &domain.JobCandidate{
		ID:        uuid.New(),
		JobID:     uuid.New(),
		UserID:    uuid.New(),
		Status:    domain.JobCandidateStatusRejected,
		UpdatedBy: &actor,
		UpdatedAt: &now,
	}

	t.Run("success", func(t *testing.T) {
		_, mock, s := newJobCandidateMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE job_candidates")).
			WithArgs("rejected", nil, nil, actor, sqlmock.AnyArg(), c.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Update(context.Background(), c))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no active row", func(t *testing.T) {
		_, mock, s := newJobCandidateMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE job_candidates")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Update(context.Background(), c), store.ErrJobCandidateNotFound)
	})

	t.Run("exec failure", func(t *testing.T) {
		_, mock, s := newJobCandidateMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE job_candidates")).
			WillReturnError(errors.New("deadlock detected"))

		err := s.Update(context.Background(), c)
		assert.ErrorIs(t, err, store.ErrUpdateFailed)
	})
}
