package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nats-io/nats.go"
)

const healthCheckTimeout = 2 * time.Second

type healthResponse struct {
	Status    string   `json:"status"`
	Database  string   `json:"database"`
	Transport string   `json:"transport"`
	Topics    []string `json:"topics,omitempty"`
}

// setupRouter creates the operational router. The service exposes no API
// beyond its health probe.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth reports 200 when the database answers and the broker
// connection, if any, is up.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Database:  "ok",
		Transport: app.config.Events.Transport,
	}
	if app.dispatcher != nil {
		resp.Topics = app.dispatcher.Topics()
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if app.db == nil || app.db.PingContext(ctx) != nil {
		resp.Status = "unavailable"
		resp.Database = "unavailable"
	}
	if app.natsConn != nil && app.natsConn.Status() != nats.CONNECTED {
		resp.Status = "unavailable"
	}

	code := http.StatusOK
	if resp.Status != "ok" {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		app.logger.Error("Failed to write health check response", "error", err)
	}
}
