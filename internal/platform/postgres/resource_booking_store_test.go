package postgres

import (
	"context"
	"database/sql"
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

var resourceBookingRowColumns = []string{
	"id", "project_id", "user_id", "job_id", "status", "start_date", "end_date",
	"member_rate", "customer_rate", "rate_type", "created_by", "updated_by",
	"created_at", "updated_at", "deleted_at",
}

func newResourceBookingMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresResourceBookingStore) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock, NewPostgresResourceBookingStore(db, nil)
}

func TestPostgresResourceBookingStore_FindAll(t *testing.T) {
	_, mock, s := newResourceBookingMock(t)

	id, jobID := uuid.New(), uuid.New()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM resource_bookings WHERE project_id = $1 AND status NOT IN ($2) AND deleted_at IS NULL")).
		WithArgs(int64(7), "cancelled").
		WillReturnRows(sqlmock.NewRows(resourceBookingRowColumns).
			AddRow(id.String(), int64(7), uuid.NewString(), jobID.String(), "assigned", start, end,
				13.5, nil, "weekly", uuid.NewString(), nil, start, nil, nil))

	got, err := s.FindAll(context.Background(), store.ResourceBookingFilter{
		ProjectID:   7,
		StatusNotIn: []domain.ResourceBookingStatus{domain.ResourceBookingStatusCancelled},
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	b := got[0]
	assert.Equal(t, id, b.ID)
	assert.Equal(t, int64(7), b.ProjectID)
	require.NotNil(t, b.JobID)
	assert.Equal(t, jobID, *b.JobID)
	assert.Equal(t, domain.ResourceBookingStatusAssigned, b.Status)
	assert.Equal(t, domain.RateTypeWeekly, b.RateType)
	require.NotNil(t, b.MemberRate)
	assert.InDelta(t, 13.5, *b.MemberRate, 0.0001)
	assert.Nil(t, b.CustomerRate)
	require.NotNil(t, b.EndDate)
	assert.True(t, end.Equal(*b.EndDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresResourceBookingStore_FindAllEmpty(t *testing.T) {
	_, mock, s := newResourceBookingMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM resource_bookings WHERE project_id = $1")).
		WillReturnRows(sqlmock.NewRows(resourceBookingRowColumns))

	got, err := s.FindAll(context.Background(), store.ResourceBookingFilter{ProjectID: 1})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostgresResourceBookingStore_GetByIDNotFound(t *testing.T) {
	_, mock, s := newResourceBookingMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM resource_bookings WHERE id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	got, err := s.GetByID(context.Background(), id)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrResourceBookingNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestPostgresResourceBookingStore_Update(t *testing.T) {
	now := time.Now().UTC()
	actor := uuid.New()
	b := &domain.ResourceBooking{
		ID:        uuid.New(),
		ProjectID: 3,
		UserID:    uuid.New(),
		Status:    domain.ResourceBookingStatusCancelled,
		RateType:  domain.RateTypeDaily,
		UpdatedBy: &actor,
		UpdatedAt: &now,
	}

	t.Run("success", func(t *testing.T) {
		_, mock, s := newResourceBookingMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE resource_bookings")).
			WithArgs("cancelled", nil, nil, nil, nil, "daily", actor, sqlmock.AnyArg(), b.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Update(context.Background(), b))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("soft deleted row", func(t *testing.T) {
		_, mock, s := newResourceBookingMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE resource_bookings")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Update(context.Background(), b), store.ErrResourceBookingNotFound)
	})
}

func TestNewStoresPanicOnNilDB(t *testing.T) {
	assert.Panics(t, func() { NewPostgresJobCandidateStore(nil, nil) })
	assert.Panics(t, func() { NewPostgresResourceBookingStore(nil, nil) })
}
