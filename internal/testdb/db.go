package testdb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/phrazzld/taas-events/internal/platform/logger"
	"github.com/phrazzld/taas-events/internal/platform/postgres"
	"github.com/phrazzld/taas-events/internal/redact"
)

// TestTimeout bounds connecting and migrating.
const TestTimeout = 30 * time.Second

// Open connects to the test database and applies all migrations. The
// connection is closed when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	url := DatabaseURL()
	if url == "" {
		if isCIEnvironment() {
			t.Fatalf("no test database configured: set %s or %s", EnvTestDatabaseURL, EnvDatabaseURL)
		}
		t.Skipf("%s not set, skipping database test", EnvTestDatabaseURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, url, postgres.DefaultPoolConfig())
	if err != nil {
		t.Fatalf("failed to connect to test database %s: %s", redact.String(url), redact.Error(err))
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})

	log, _ := logger.GetTestLogger(t)
	if err := postgres.Migrate(ctx, db, log); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
