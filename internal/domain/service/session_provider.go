package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionListener receives the new session of a device whenever its identity changes.
type SessionListener func(ctx context.Context, session entity.Session)

// SessionProvider tracks the identity of every device and notifies subscribers on change.
type SessionProvider interface {
	// Current returns the last observed session. Devices never observed are Loading.
	Current(deviceID uuid.UUID) entity.Session

	// Observe records the identity resolved for a device. A nil userID means a guest.
	// Listeners run synchronously, and only when the identity actually changed.
	Observe(ctx context.Context, deviceID uuid.UUID, userID *uuid.UUID)

	// Subscribe registers a listener for one device. The returned func removes it.
	Subscribe(deviceID uuid.UUID, listener SessionListener) (unsubscribe func())
}
