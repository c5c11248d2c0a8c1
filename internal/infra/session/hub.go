// Package session tracks which identity each device is browsing as.
package session

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

type subscriber struct {
	id       uint64
	listener service.SessionListener
}

type deviceState struct {
	session     entity.Session
	observed    bool
	subscribers []subscriber
}

// Hub is the in-process SessionProvider. Identity is reported by the HTTP layer
// after it resolves the bearer token of a request.
type Hub struct {
	mu      sync.Mutex
	devices map[uuid.UUID]*deviceState
	nextID  uint64
	logger  *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}

	return &Hub{
		devices: make(map[uuid.UUID]*deviceState),
		logger:  logger.With(slog.String("component", "session_hub")),
	}
}

// NewProvider exposes the hub as a service.SessionProvider for fx.
func NewProvider(logger *slog.Logger) service.SessionProvider {
	return NewHub(logger)
}

// Current returns the last observed session of the device, Loading if none was observed.
func (h *Hub) Current(deviceID uuid.UUID) entity.Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	state, ok := h.devices[deviceID]
	if !ok || !state.observed {
		return entity.LoadingSession()
	}

	return state.session
}

// Observe records the resolved identity and notifies listeners if it changed.
func (h *Hub) Observe(ctx context.Context, deviceID uuid.UUID, userID *uuid.UUID) {
	next := entity.GuestSession()
	if userID != nil {
		next = entity.UserSession(*userID)
	}

	h.mu.Lock()
	state, ok := h.devices[deviceID]
	if !ok {
		state = &deviceState{}
		h.devices[deviceID] = state
	}
	if state.observed && state.session.SameIdentity(next) {
		h.mu.Unlock()

		return
	}
	state.session = next
	state.observed = true
	listeners := make([]service.SessionListener, 0, len(state.subscribers))
	for _, sub := range state.subscribers {
		listeners = append(listeners, sub.listener)
	}
	h.mu.Unlock()

	h.logger.DebugContext(ctx, "Device session changed",
		slog.String("deviceID", deviceID.String()),
		slog.Bool("authenticated", next.Authenticated()),
		slog.Int("listeners", len(listeners)),
	)

	for _, listener := range listeners {
		listener(ctx, next)
	}
}

// Subscribe registers listener for deviceID. The device entry is dropped once its last listener leaves.
func (h *Hub) Subscribe(deviceID uuid.UUID, listener service.SessionListener) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	state, ok := h.devices[deviceID]
	if !ok {
		state = &deviceState{}
		h.devices[deviceID] = state
	}

	h.nextID++
	id := h.nextID
	state.subscribers = append(state.subscribers, subscriber{id: id, listener: listener})

	var once sync.Once

	return func() {
		once.Do(func() {
			h.unsubscribe(deviceID, id)
		})
	}
}

func (h *Hub) unsubscribe(deviceID uuid.UUID, id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	state, ok := h.devices[deviceID]
	if !ok {
		return
	}

	for i, sub := range state.subscribers {
		if sub.id == id {
			state.subscribers = append(state.subscribers[:i], state.subscribers[i+1:]...)

			break
		}
	}

	if len(state.subscribers) == 0 {
		delete(h.devices, deviceID)
	}
}

// Devices returns how many devices are currently tracked.
func (h *Hub) Devices() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.devices)
}
