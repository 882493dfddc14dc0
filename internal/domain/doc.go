// Package domain contains the booking entities the event service reacts to:
// Jobs, the JobCandidates applying to them and the ResourceBookings placed
// under the same project. It defines their statuses, the soft-delete
// predicate, and the partial-update patches applied by the service layer.
package domain
