// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the authorization level attached to an account.
type Role string

const (
	// RoleCustomer is the default role of every shopper.
	RoleCustomer Role = "customer"
	// RoleAdmin can manage catalog, orders and stock.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin can additionally manage users and their roles.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants access to the admin shell.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// IsSuperAdmin reports whether the role can manage users and roles.
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// Satisfies reports whether r meets the required role.
// super_admin satisfies admin, admin and super_admin satisfy customer.
func (r Role) Satisfies(required Role) bool {
	switch required {
	case RoleSuperAdmin:
		return r.IsSuperAdmin()
	case RoleAdmin:
		return r.IsAdmin()
	case RoleCustomer:
		return r.IsValid()
	default:
		return false
	}
}

// RoleOrDefault parses s and falls back to RoleCustomer for unknown values.
func RoleOrDefault(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleCustomer
	}

	return role
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
