// Package store defines the persistence contracts for job candidates and
// resource bookings: filtered bulk lookups, single-row reads and updates, and
// transaction plumbing. Implementations live under internal/platform.
package store
