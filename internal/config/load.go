package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "TAAS"

// setDefaults registers default values for optional settings.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("events.job_update_topic", "taas.job.update")
	v.SetDefault("events.resource_booking_update_topic", "taas.resourcebooking.update")
	v.SetDefault("events.job_candidate_update_topic", "taas.jobcandidate.update")
	v.SetDefault("events.originator", "taas-events")
	v.SetDefault("events.transport", "nats")

	v.SetDefault("nats.url", "nats://127.0.0.1:4222")
	v.SetDefault("nats.stream", "TAAS_EVENTS")
	v.SetDefault("nats.consumer_prefix", "taas_events")
	v.SetDefault("nats.ack_wait_seconds", 30)
	v.SetDefault("nats.max_deliver", 5)
}

// bindEnvs binds every known key so that Unmarshal sees environment values
// even when no config file mentions the key.
func bindEnvs(v *viper.Viper) error {
	keys := []string{
		"server.port",
		"server.log_level",
		"database.url",
		"events.job_update_topic",
		"events.resource_booking_update_topic",
		"events.job_candidate_update_topic",
		"events.originator",
		"events.transport",
		"nats.url",
		"nats.stream",
		"nats.consumer_prefix",
		"nats.ack_wait_seconds",
		"nats.max_deliver",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}
	return nil
}

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile behaves like Load but reads the given config file first.
// An empty path searches for config.yaml in the working directory; a missing
// file in that case is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
