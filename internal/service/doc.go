// Package service applies partial updates to job candidates and resource
// bookings on behalf of an acting identity.
//
// Each update checks the identity's scopes, validates the patch, then loads,
// patches and persists the entity in a single transaction. After commit the
// updated entity is published as an update event when a publisher is
// configured.
package service
