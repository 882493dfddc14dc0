package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/taas-events/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Service configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"transport", cfg.Events.Transport)

	slog.Debug("Event topics",
		"job_update_topic", cfg.Events.JobUpdateTopic,
		"resource_booking_update_topic", cfg.Events.ResourceBookingUpdateTopic,
		"job_candidate_update_topic", cfg.Events.JobCandidateUpdateTopic)

	return cfg, nil
}
