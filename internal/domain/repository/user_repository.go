// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserEmailTaken is returned when the email is already used by another account.
var ErrUserEmailTaken = errors.New("user email already taken")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity and fills in the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateRole changes the role of a single user.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// List returns one page of users ordered by creation time, plus the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.User, int64, error)

	// AcquireSessionMutex takes a row lock on the user for the rest of the transaction.
	// Concurrent logins of one user serialize on it while the session limit is checked.
	AcquireSessionMutex(ctx context.Context, userID uuid.UUID) error

	// Count returns the number of accounts.
	Count(ctx context.Context) (int64, error)
}
