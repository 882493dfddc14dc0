package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taas-events/internal/config"
	"github.com/phrazzld/taas-events/internal/platform/postgres"
	"github.com/phrazzld/taas-events/internal/redact"
)

// setupAppDatabase opens the connection pool and brings the schema up to date.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := postgres.Open(ctx, cfg.Database.URL, postgres.DefaultPoolConfig())
	if err != nil {
		return nil, fmt.Errorf("database unavailable: %s", redact.Error(err))
	}
	logger.Info("Database connection established")

	if err := postgres.Migrate(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return db, nil
}
