// Package handlers reacts to entity update events by cascading status
// changes to dependent entities.
//
// Handlers decide from the event payload alone whether a cascade is needed.
// Dependents are selected with filters that exclude rows already in the
// target state, so replaying an event after a complete cascade issues no
// further updates. Updates run concurrently; when one fails the others still
// complete and nothing is rolled back.
package handlers
