package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/phrazzld/taas-events/internal/config"
	"github.com/phrazzld/taas-events/internal/events"
	"github.com/phrazzld/taas-events/internal/handlers"
	natsplatform "github.com/phrazzld/taas-events/internal/platform/nats"
	"github.com/phrazzld/taas-events/internal/platform/postgres"
	"github.com/phrazzld/taas-events/internal/service"
	"github.com/phrazzld/taas-events/internal/service/auth"
	"github.com/phrazzld/taas-events/internal/store"
)

const (
	serviceName = "taas-events"

	transportNATS   = "nats"
	transportMemory = "memory"
)

// application holds the shared dependencies so they can be released together
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jobCandidateStore    store.JobCandidateStore
	resourceBookingStore store.ResourceBookingStore

	jobCandidateService    service.JobCandidateService
	resourceBookingService service.ResourceBookingService

	dispatcher *events.Dispatcher
	publisher  events.Publisher

	// Set for the nats transport only.
	natsConn   *nats.Conn
	subscriber *natsplatform.Subscriber

	// Set for the memory transport only.
	memoryBus *events.InMemoryPublisher
}

// newApplication wires stores, services, handlers and the event transport.
// Consumption does not start until Run.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var js jetstream.JetStream
	switch cfg.Events.Transport {
	case transportNATS:
		var err error
		app.natsConn, js, err = natsplatform.Connect(cfg.NATS.URL, serviceName, logger)
		if err != nil {
			return nil, err
		}
		if err := natsplatform.EnsureStream(ctx, js, natsplatform.StreamConfig{
			Name:     cfg.NATS.Stream,
			Subjects: eventTopics(cfg.Events),
		}); err != nil {
			app.natsConn.Close()
			return nil, err
		}
		app.publisher = natsplatform.NewPublisher(js, logger)
		logger.Info("Connected to NATS JetStream", "stream", cfg.NATS.Stream)
	case transportMemory:
		app.memoryBus = events.NewInMemoryPublisher(logger)
		app.publisher = app.memoryBus
		logger.Warn("Using in-memory event transport; events from other services will not be received")
	default:
		return nil, fmt.Errorf("unsupported event transport %q", cfg.Events.Transport)
	}

	app.jobCandidateStore = postgres.NewPostgresJobCandidateStore(db, logger)
	app.resourceBookingStore = postgres.NewPostgresResourceBookingStore(db, logger)

	var err error
	app.jobCandidateService, err = service.NewJobCandidateService(
		service.NewJobCandidateRepositoryAdapter(app.jobCandidateStore, db),
		logger,
		service.WithPublisher(app.publisher, cfg.Events.JobCandidateUpdateTopic, cfg.Events.Originator),
	)
	if err != nil {
		app.closeTransport()
		return nil, fmt.Errorf("failed to create job candidate service: %w", err)
	}

	app.resourceBookingService, err = service.NewResourceBookingService(
		service.NewResourceBookingRepositoryAdapter(app.resourceBookingStore, db),
		logger,
		service.WithPublisher(app.publisher, cfg.Events.ResourceBookingUpdateTopic, cfg.Events.Originator),
	)
	if err != nil {
		app.closeTransport()
		return nil, fmt.Errorf("failed to create resource booking service: %w", err)
	}

	app.dispatcher, err = newDispatcher(
		cfg.Events,
		app.jobCandidateStore,
		app.resourceBookingStore,
		app.jobCandidateService,
		app.resourceBookingService,
		logger,
	)
	if err != nil {
		app.closeTransport()
		return nil, err
	}

	if app.memoryBus != nil {
		app.memoryBus.Subscribe(app.dispatcher)
	} else {
		app.subscriber, err = natsplatform.NewSubscriber(js, app.dispatcher, app.dispatcher.Topics(),
			natsplatform.SubscriberConfig{
				Stream:         cfg.NATS.Stream,
				ConsumerPrefix: cfg.NATS.ConsumerPrefix,
				AckWait:        time.Duration(cfg.NATS.AckWaitSeconds) * time.Second,
				MaxDeliver:     cfg.NATS.MaxDeliver,
			}, logger)
		if err != nil {
			app.closeTransport()
			return nil, fmt.Errorf("failed to create subscriber: %w", err)
		}
	}

	logger.Info("Application initialized successfully", "topics", app.dispatcher.Topics())
	return app, nil
}

// newDispatcher builds the cascade handlers and binds them to the configured
// topics.
func newDispatcher(
	cfg config.EventsConfig,
	candidates handlers.JobCandidateFinder,
	bookings handlers.ResourceBookingFinder,
	candidateUpdater handlers.JobCandidateUpdater,
	bookingUpdater handlers.ResourceBookingUpdater,
	logger *slog.Logger,
) (*events.Dispatcher, error) {
	identities := auth.StaticProvider{}

	jobHandler, err := handlers.NewJobEventHandler(
		candidates, bookings, candidateUpdater, bookingUpdater, identities, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create job event handler: %w", err)
	}

	bookingHandler, err := handlers.NewResourceBookingEventHandler(
		candidates, candidateUpdater, identities, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource booking event handler: %w", err)
	}

	return events.NewDispatcher(events.TopicMapping{
		cfg.JobUpdateTopic:             jobHandler.ProcessUpdate,
		cfg.ResourceBookingUpdateTopic: bookingHandler.ProcessUpdate,
	}, logger), nil
}

// eventTopics lists every subject the service reads or writes.
func eventTopics(cfg config.EventsConfig) []string {
	return []string{
		cfg.JobUpdateTopic,
		cfg.ResourceBookingUpdateTopic,
		cfg.JobCandidateUpdateTopic,
	}
}

// Run starts event consumption and the health server, and blocks until
// shutdown.
func (app *application) Run(ctx context.Context) error {
	if app.subscriber != nil {
		if err := app.subscriber.Start(ctx); err != nil {
			app.cleanup()
			return fmt.Errorf("failed to start subscriber: %w", err)
		}
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// closeTransport releases the broker connection.
func (app *application) closeTransport() {
	if app.subscriber != nil {
		app.subscriber.Stop()
	}
	if app.natsConn != nil {
		if err := app.natsConn.Drain(); err != nil {
			app.logger.Error("Error draining NATS connection", "error", err)
		}
	}
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.closeTransport()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
