// Package domain defines the authenticated principal and the project permission derived from it.
//
// A Principal can only be produced by Authenticate from claims a verifier under internal/auth
// returned. A populated ProjectPermission can only be produced by Principal.ProjectPermission,
// and consumers read it exclusively through a PermissionVisitor.
package domain

// Role is a named grant carried by a principal.
type Role string

const (
	// RoleAdmin sees every project and may open accounts.
	RoleAdmin Role = "admin"

	// RoleProjectManager sees the one project they manage.
	RoleProjectManager Role = "projectManager"

	// RoleAccountant may withdraw from accounts.
	RoleAccountant Role = "accountant"
)

// ParseRole converts a token claim into a Role. Unknown names are rejected.
func ParseRole(name string) (Role, bool) {
	switch Role(name) {
	case RoleAdmin, RoleProjectManager, RoleAccountant:
		return Role(name), true
	default:
		return "", false
	}
}
