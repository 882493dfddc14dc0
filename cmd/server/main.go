// Package main is the entry point for the taas-events service, which reacts
// to Job and ResourceBooking update events by cascading status changes to the
// job candidates and resource bookings that depend on them.
package main

import (
	"context"
	"fmt"
	"log"
)

func main() {
	fmt.Println("TaaS Events Service Starting...")

	if err := run(context.Background()); err != nil {
		log.Fatalf("Service terminated: %v", err)
	}
}

// run loads configuration, builds the application and blocks until the
// service is shut down.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, l, db)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			l.Error("Error closing database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
