// Package testdb provides helpers for tests that need a real PostgreSQL
// database.
//
// Tests call Open to get a migrated connection. When no database is
// configured the test is skipped locally and fails in CI, so a broken CI
// database is never mistaken for a passing run:
//
//	db := testdb.Open(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//		// every change made through tx is rolled back
//	})
package testdb
