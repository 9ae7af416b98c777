// Package models defines data structures used across the portal.
// File: models/role.go
package models

// ----------------------- role model -----------------------

// Role identifies what a user is allowed to see and do in the portal.
type Role string

// The closed set of roles the portal understands.
const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleAD         Role = "AD"
	RoleCoach      Role = "COACH"
	RoleOfficial   Role = "OFFICIAL"
	RoleUser       Role = "USER"
)

// DefaultRole is what unknown or missing role strings normalize to.
const DefaultRole = RoleUser

// legacy alias carried over from an earlier user import
const legacyStaffRole = "STAFF"

// knownRoles is the membership table for normalization.
var knownRoles = map[Role]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
	RoleAD:         true,
	RoleCoach:      true,
	RoleOfficial:   true,
	RoleUser:       true,
}

// NormalizeRole coerces an arbitrary role string into a member of the known
// set. Known roles pass through unchanged, the legacy "STAFF" alias maps to
// USER, and anything else falls back to the default role. It never fails.
func NormalizeRole(input string) Role {
	if knownRoles[Role(input)] {
		return Role(input)
	}
	if input == legacyStaffRole {
		return RoleUser
	}
	return DefaultRole
}

// IsElevated reports whether the role may approve or decline work requests.
func (r Role) IsElevated() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleAD:
		return true
	}
	return false
}

// AllRoles returns the known roles in display order.
func AllRoles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleAD, RoleCoach, RoleOfficial, RoleUser}
}
