package testdb

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseURL(t *testing.T) {
	tests := []struct {
		name     string
		primary  string
		fallback string
		want     string
	}{
		{"none set", "", "", ""},
		{"fallback only", "", "postgres://ci/db", "postgres://ci/db"},
		{"primary wins", "postgres://local/db", "postgres://ci/db", "postgres://local/db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvTestDatabaseURL, tt.primary)
			t.Setenv(EnvDatabaseURL, tt.fallback)

			assert.Equal(t, tt.want, DatabaseURL())
			assert.Equal(t, tt.want == "", ShouldSkipDatabaseTest())
		})
	}
}

func TestWithTx_AlwaysRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM job_candidates").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectRollback()

	WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		_, err := tx.Exec("DELETE FROM job_candidates")
		require.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_ToleratesCommittedTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectCommit()

	WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		require.NoError(t, tx.Commit())
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
