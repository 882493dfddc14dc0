package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Events   EventsConfig   `mapstructure:"events" validate:"required"`
	NATS     NATSConfig     `mapstructure:"nats" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// EventsConfig names the topics this deployment reacts to.
// Topic names are deployment configuration; the handler bound to each
// topic is fixed at startup.
type EventsConfig struct {
	JobUpdateTopic             string `mapstructure:"job_update_topic" validate:"required"`
	ResourceBookingUpdateTopic string `mapstructure:"resource_booking_update_topic" validate:"required"`
	// JobCandidateUpdateTopic is published to after a job candidate changes.
	// Nothing in this service consumes it.
	JobCandidateUpdateTopic string `mapstructure:"job_candidate_update_topic" validate:"required"`
	// Originator is stamped on every event this service publishes.
	Originator string `mapstructure:"originator" validate:"required"`
	// Transport selects how events are received and published: "nats" uses
	// JetStream, "memory" loops published events back into the dispatcher.
	Transport string `mapstructure:"transport" validate:"required,oneof=nats memory"`
}

// NATSConfig contains the JetStream connection and consumer settings.
type NATSConfig struct {
	URL            string `mapstructure:"url" validate:"required,url"`
	Stream         string `mapstructure:"stream" validate:"required"`
	ConsumerPrefix string `mapstructure:"consumer_prefix" validate:"required"`
	AckWaitSeconds int    `mapstructure:"ack_wait_seconds" validate:"required,gt=0"`
	MaxDeliver     int    `mapstructure:"max_deliver" validate:"required,gt=0"`
}
