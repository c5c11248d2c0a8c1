// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Guests have no User at all.
type User struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email         string    // The user's primary contact email, used as the email/password login identifier.
	Name          string    // The user's display name.
	Role          Role      // Authorization level; customer unless promoted by a super admin.
	EmailVerified bool      // Whether the email address has been confirmed.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin reports whether the user may enter the admin shell.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role.IsAdmin()
}

// IsSuperAdmin reports whether the user may manage other users.
func (u *User) IsSuperAdmin() bool {
	return u != nil && u.Role.IsSuperAdmin()
}
