// Package postgres provides PostgreSQL implementations of the store
// interfaces for job candidates and resource bookings. It owns connection
// setup through the pgx database/sql driver, the embedded goose migrations,
// the translation of store filters into WHERE clauses, and the mapping of
// driver errors onto store sentinels.
package postgres
