package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names the way a credential was issued.
type ProviderType string

const (
	// ProviderTypeEmail is an email/password credential.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is a Google Sign-In credential.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeFirebase is a credential issued by the hosted Firebase auth backend.
	ProviderTypeFirebase ProviderType = "firebase"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// Authentication represents a single method of logging in (a credential).
// For example, a user's email/password is one record, while a linked Google account is another.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider.
	ProviderUserID string       // The user's unique ID at the provider (email for the email provider).
	PasswordHash   string       // bcrypt hash, only set for the email provider.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 of the raw refresh token.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SessionInfo is the user-facing view of a refresh token.
type SessionInfo struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	IsActive  bool       `json:"is_active"`
	LastUsed  *time.Time `json:"last_used,omitempty"`
}
