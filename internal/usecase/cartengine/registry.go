package cartengine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultIdleTTL   = 30 * time.Minute
	minSweepInterval = time.Second
)

type registryEntry struct {
	engine      *Engine
	unsubscribe func()
	lastUsed    time.Time
}

// Registry owns one engine per device. Each engine is subscribed to the
// session provider so sign-in and sign-out reach it as they happen.
type Registry struct {
	deps     Deps
	sessions service.SessionProvider
	idleTTL  time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu      sync.Mutex
	engines map[uuid.UUID]*registryEntry
}

// RegistryParams holds dependencies for the engine registry.
type RegistryParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Sessions  service.SessionProvider
	Store     repository.CartRepository
	Catalog   repository.CatalogRepository
	Guest     repository.GuestCartRepository
	Publisher service.CartEventPublisher
}

// NewRegistry wires the registry and runs the idle sweeper for the app's lifetime.
func NewRegistry(params RegistryParams) *Registry {
	cfg := params.Config.Cart

	registry := NewRegistryWithDeps(Deps{
		Store:       params.Store,
		Catalog:     params.Catalog,
		Guest:       params.Guest,
		Publisher:   params.Publisher,
		Logger:      params.Logger,
		CallTimeout: cfg.CallTimeout,
	}, params.Sessions, cfg.EngineIdleTTL)

	sweepCtx, cancel := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go registry.Run(sweepCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			registry.Close()

			return nil
		},
	})

	return registry
}

// NewRegistryWithDeps builds a registry without fx.
func NewRegistryWithDeps(deps Deps, sessions service.SessionProvider, idleTTL time.Duration) *Registry {
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	return &Registry{
		deps:     deps,
		sessions: sessions,
		idleTTL:  idleTTL,
		logger:   deps.Logger.With(slog.String("component", "cart_registry")),
		now:      time.Now,
		engines:  make(map[uuid.UUID]*registryEntry),
	}
}

// Engine returns the engine of deviceID, creating and subscribing it on first use.
func (r *Registry) Engine(deviceID uuid.UUID) *Engine {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.engines[deviceID]; ok {
		entry.lastUsed = r.now()

		return entry.engine
	}

	engine := New(deviceID, r.deps)
	unsubscribe := r.sessions.Subscribe(deviceID, func(ctx context.Context, session entity.Session) {
		if err := engine.HandleSessionChange(ctx, session); err != nil {
			r.logger.WarnContext(ctx, "Cart engine failed to follow session change",
				slog.String("deviceID", deviceID.String()),
				slog.Any("error", err),
			)
		}
	})

	r.engines[deviceID] = &registryEntry{
		engine:      engine,
		unsubscribe: unsubscribe,
		lastUsed:    r.now(),
	}

	return engine
}

// Len returns the number of live engines.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.engines)
}

// Sweep drops engines idle for longer than the TTL and returns how many were dropped.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	var idle []*registryEntry
	for deviceID, entry := range r.engines {
		if entry.lastUsed.Before(cutoff) {
			idle = append(idle, entry)
			delete(r.engines, deviceID)
		}
	}
	r.mu.Unlock()

	for _, entry := range idle {
		entry.unsubscribe()
	}

	return len(idle)
}

// sweepInterval is half the idle TTL, never below minSweepInterval.
func (r *Registry) sweepInterval() time.Duration {
	return max(r.idleTTL/2, minSweepInterval)
}

// Run sweeps idle engines until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.sweepInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.DebugContext(ctx, "Evicted idle cart engines", slog.Int("count", n))
			}
		}
	}
}

// Close unsubscribes every engine.
func (r *Registry) Close() {
	r.mu.Lock()
	entries := r.engines
	r.engines = make(map[uuid.UUID]*registryEntry)
	r.mu.Unlock()

	for _, entry := range entries {
		entry.unsubscribe()
	}
}
