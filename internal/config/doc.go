// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the settings needed by the event service while keeping
// configuration details separate from business logic.
package config
