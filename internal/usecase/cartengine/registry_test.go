package cartengine

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (*Registry, *session.Hub, *memCartStore, *memGuestStore) {
	t.Helper()

	hub := session.NewHub(nil)
	store := newMemCartStore()
	guest := newMemGuestStore()
	registry := NewRegistryWithDeps(Deps{
		Store:   store,
		Catalog: newMemCatalog(),
		Guest:   guest,
	}, hub, time.Minute)

	return registry, hub, store, guest
}

func TestRegistry_ReusesEnginePerDevice(t *testing.T) {
	registry, _, _, _ := newTestRegistry(t)
	deviceID := uuid.New()

	first := registry.Engine(deviceID)
	second := registry.Engine(deviceID)

	assert.Same(t, first, second)
	assert.NotSame(t, first, registry.Engine(uuid.New()))
	assert.Equal(t, 2, registry.Len())
}

func TestRegistry_EngineFollowsSessionEvents(t *testing.T) {
	registry, hub, store, guest := newTestRegistry(t)
	ctx := context.Background()
	deviceID := uuid.New()
	userID := uuid.New()
	variantID := uuid.New()

	engine := registry.Engine(deviceID)
	hub.Observe(ctx, deviceID, nil)
	require.Equal(t, StateGuest, engine.State())

	require.NoError(t, engine.AddItem(ctx, variantID, 2))

	// Signing in on the device merges the guest cart right away.
	hub.Observe(ctx, deviceID, &userID)
	require.Equal(t, StateBound, engine.State())
	assert.Equal(t, []entity.CartLine{{VariantID: variantID, Quantity: 2}}, store.lines(userID))
	assert.Empty(t, guest.stored(deviceID))

	hub.Observe(ctx, deviceID, nil)
	assert.Equal(t, StateGuest, engine.State())
}

func TestRegistry_SweepEvictsIdleEngines(t *testing.T) {
	registry, hub, _, _ := newTestRegistry(t)
	now := time.Now()
	registry.now = func() time.Time { return now }

	idle := uuid.New()
	active := uuid.New()
	registry.Engine(idle)
	registry.Engine(active)
	assert.Equal(t, 2, hub.Devices())

	now = now.Add(45 * time.Second)
	registry.Engine(active)
	now = now.Add(30 * time.Second)

	assert.Equal(t, 1, registry.Sweep())
	assert.Equal(t, 1, registry.Len())
	assert.Equal(t, 1, hub.Devices())
}

func TestRegistry_Close(t *testing.T) {
	registry, hub, _, _ := newTestRegistry(t)
	registry.Engine(uuid.New())
	registry.Engine(uuid.New())

	registry.Close()

	assert.Equal(t, 0, registry.Len())
	assert.Equal(t, 0, hub.Devices())
}

func TestRegistry_SweepInterval(t *testing.T) {
	tests := []struct {
		name    string
		idleTTL time.Duration
		want    time.Duration
	}{
		{name: "half the ttl", idleTTL: 10 * time.Minute, want: 5 * time.Minute},
		{name: "tiny ttl is clamped", idleTTL: time.Nanosecond, want: minSweepInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistryWithDeps(Deps{}, session.NewHub(nil), tt.idleTTL)

			assert.Equal(t, tt.want, registry.sweepInterval())
		})
	}
}

func TestRegistry_RunWithTinyTTLStopsOnCancel(t *testing.T) {
	registry := NewRegistryWithDeps(Deps{}, session.NewHub(nil), time.Nanosecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NotPanics(t, func() { registry.Run(ctx) })
}
