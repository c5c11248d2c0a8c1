package entity

import "github.com/google/uuid"

// Session is what the session provider knows about one device.
// A nil UserID means a guest. Loading stays true until the identity check resolves.
type Session struct {
	UserID  *uuid.UUID
	Loading bool
}

// GuestSession returns a settled session without identity.
func GuestSession() Session {
	return Session{}
}

// UserSession returns a settled session bound to userID.
func UserSession(userID uuid.UUID) Session {
	return Session{UserID: &userID}
}

// LoadingSession returns a session whose identity is not yet known.
func LoadingSession() Session {
	return Session{Loading: true}
}

// Authenticated reports whether the session carries an identity.
func (s Session) Authenticated() bool {
	return !s.Loading && s.UserID != nil
}

// SameIdentity reports whether both sessions are settled on the same identity (or both guests).
func (s Session) SameIdentity(other Session) bool {
	if s.Loading || other.Loading {
		return s.Loading == other.Loading
	}
	if s.UserID == nil || other.UserID == nil {
		return s.UserID == nil && other.UserID == nil
	}

	return *s.UserID == *other.UserID
}
