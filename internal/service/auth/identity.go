// Package auth models the acting identity behind an update: either an end
// user with roles, or a machine principal with scopes. Token handling lives
// at the edge of the system; services only see the resulting Identity.
package auth

import (
	"slices"

	"github.com/google/uuid"
)

// SystemHandle is the handle recorded for machine-initiated changes.
const SystemHandle = "taas-events"

// Identity is the principal on whose behalf an operation runs.
type Identity struct {
	UserID    uuid.UUID
	Handle    string
	Roles     []Role
	Scopes    []Scope
	IsMachine bool
}

// SystemIdentity returns the privileged machine principal used for
// event-driven updates. Its UserID is the nil UUID, which is what gets
// recorded in updatedBy columns. Each call returns a fresh value.
func SystemIdentity() Identity {
	return Identity{
		UserID:    uuid.Nil,
		Handle:    SystemHandle,
		Scopes:    AllScopes(),
		IsMachine: true,
	}
}

// HasFullManagePermission reports whether an end user holds a role that
// bypasses scope checks.
func (i Identity) HasFullManagePermission() bool {
	if i.IsMachine {
		return false
	}
	for _, r := range i.Roles {
		if slices.Contains(FullManagePermissionRoles, r) {
			return true
		}
	}
	return false
}

// Can reports whether the identity may act with any of the given scopes.
// End users with a full-manage role are always allowed; machines need one
// of the listed scopes.
func (i Identity) Can(scopes ...Scope) bool {
	if i.HasFullManagePermission() {
		return true
	}
	if !i.IsMachine {
		return false
	}
	for _, s := range scopes {
		if slices.Contains(i.Scopes, s) {
			return true
		}
	}
	return false
}

// Provider hands out the identity used for machine-initiated updates.
type Provider interface {
	SystemIdentity() Identity
}

// StaticProvider returns SystemIdentity on every call.
type StaticProvider struct{}

// SystemIdentity implements Provider.
func (StaticProvider) SystemIdentity() Identity {
	return SystemIdentity()
}

var _ Provider = StaticProvider{}
