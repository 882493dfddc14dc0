package auth

// Role is an end-user role name as issued by the identity service.
type Role string

// Known roles
const (
	RoleBookingManager Role = "bookingmanager"
	RoleAdministrator  Role = "administrator"
	RoleConnectManager Role = "Connect Manager"
)

// FullManagePermissionRoles may perform every operation regardless of scopes.
var FullManagePermissionRoles = []Role{RoleBookingManager, RoleAdministrator}

// Scope is an M2M permission string.
type Scope string

// Job scopes
const (
	ScopeReadJob   Scope = "read:taas-jobs"
	ScopeCreateJob Scope = "create:taas-jobs"
	ScopeUpdateJob Scope = "update:taas-jobs"
	ScopeDeleteJob Scope = "delete:taas-jobs"
	ScopeAllJob    Scope = "all:taas-jobs"
)

// Job candidate scopes
const (
	ScopeReadJobCandidate   Scope = "read:taas-jobCandidates"
	ScopeCreateJobCandidate Scope = "create:taas-jobCandidates"
	ScopeUpdateJobCandidate Scope = "update:taas-jobCandidates"
	ScopeDeleteJobCandidate Scope = "delete:taas-jobCandidates"
	ScopeAllJobCandidate    Scope = "all:taas-jobCandidates"
)

// Resource booking scopes
const (
	ScopeReadResourceBooking   Scope = "read:taas-resourceBookings"
	ScopeCreateResourceBooking Scope = "create:taas-resourceBookings"
	ScopeUpdateResourceBooking Scope = "update:taas-resourceBookings"
	ScopeDeleteResourceBooking Scope = "delete:taas-resourceBookings"
	ScopeAllResourceBooking    Scope = "all:taas-resourceBookings"
)

// ScopeReadTaasTeam grants read access to team views.
const ScopeReadTaasTeam Scope = "read:taas-teams"

// AllScopes lists every scope known to the service.
func AllScopes() []Scope {
	return []Scope{
		ScopeReadJob, ScopeCreateJob, ScopeUpdateJob, ScopeDeleteJob, ScopeAllJob,
		ScopeReadJobCandidate, ScopeCreateJobCandidate, ScopeUpdateJobCandidate,
		ScopeDeleteJobCandidate, ScopeAllJobCandidate,
		ScopeReadResourceBooking, ScopeCreateResourceBooking, ScopeUpdateResourceBooking,
		ScopeDeleteResourceBooking, ScopeAllResourceBooking,
		ScopeReadTaasTeam,
	}
}
