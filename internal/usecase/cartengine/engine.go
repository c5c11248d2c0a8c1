// Package cartengine keeps one logical cart per device and reconciles the
// device's guest cart with the server cart of whoever signs in on it.
package cartengine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// DefaultCallTimeout bounds a single store or catalog call when Deps.CallTimeout is unset.
const DefaultCallTimeout = 10 * time.Second

// State is the position of an engine in its session state machine.
type State int

const (
	// StateSettling means the session is not resolved yet. Mutations are rejected.
	StateSettling State = iota
	// StateGuest means the device has no identity; the guest store is the backing store.
	StateGuest
	// StateBound means a user is signed in and their server cart is resolved.
	StateBound
)

func (s State) String() string {
	switch s {
	case StateSettling:
		return "settling"
	case StateGuest:
		return "guest"
	case StateBound:
		return "bound"
	default:
		return "unknown"
	}
}

// Deps are the collaborators shared by every engine.
type Deps struct {
	Store     repository.CartRepository
	Catalog   repository.CatalogRepository
	Guest     repository.GuestCartRepository
	Publisher service.CartEventPublisher // optional
	Logger    *slog.Logger

	// CallTimeout bounds each individual store or catalog call.
	CallTimeout time.Duration
}

// MergeReport summarizes one Merge-then-Load run.
type MergeReport struct {
	CartID      uuid.UUID
	GuestLines  int
	MergedLines int
	FailedLines int
}

// Engine is the cart of one device. Session transitions and mutations are
// serialized, so a merge always completes before the next mutation starts.
type Engine struct {
	deviceID uuid.UUID
	deps     Deps
	logger   *slog.Logger

	mu     sync.Mutex
	state  State
	userID uuid.UUID
	cartID uuid.UUID

	snapMu   sync.RWMutex
	snapshot entity.CartSnapshot
}

// New creates an engine in the Settling state.
func New(deviceID uuid.UUID, deps Deps) *Engine {
	if deps.CallTimeout <= 0 {
		deps.CallTimeout = DefaultCallTimeout
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	return &Engine{
		deviceID: deviceID,
		deps:     deps,
		logger:   deps.Logger.With(slog.String("deviceID", deviceID.String())),
		state:    StateSettling,
		snapshot: entity.CartSnapshot{Loading: true, Lines: []entity.EnrichedLine{}},
	}
}

// DeviceID returns the device the engine belongs to.
func (e *Engine) DeviceID() uuid.UUID {
	return e.deviceID
}

// State returns the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// BoundUser returns the user whose server cart backs the engine, if any.
func (e *Engine) BoundUser() (uuid.UUID, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.userID, e.state == StateBound
}

// Snapshot returns a copy of the last published cart.
func (e *Engine) Snapshot() entity.CartSnapshot {
	e.snapMu.RLock()
	defer e.snapMu.RUnlock()

	return e.snapshot.Clone()
}

func (e *Engine) publish(lines []entity.EnrichedLine) {
	e.snapMu.Lock()
	defer e.snapMu.Unlock()

	e.snapshot = entity.CartSnapshot{Loading: false, Lines: lines}
}

func (e *Engine) setLoading(loading bool) {
	e.snapMu.Lock()
	defer e.snapMu.Unlock()

	e.snapshot.Loading = loading
}

// call runs fn with the per-call timeout applied.
func (e *Engine) call(ctx context.Context, fn func(ctx context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, e.deps.CallTimeout)
	defer cancel()

	return fn(callCtx)
}

// HandleSessionChange drives the state machine. Repeating the current session is a no-op.
func (e *Engine) HandleSessionChange(ctx context.Context, session entity.Session) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.follow(ctx, session)

	return err
}

// follow moves the engine to session and reports whether the active cart was
// loaded by the move. Callers hold e.mu.
func (e *Engine) follow(ctx context.Context, session entity.Session) (bool, error) {
	switch {
	case session.Loading:
		if e.state != StateSettling {
			e.logger.DebugContext(ctx, "Cart session settling", slog.String("from", e.state.String()))
		}
		e.resetBinding()
		e.setLoading(true)

		return false, nil

	case session.UserID == nil:
		if e.state == StateGuest {
			return false, nil
		}

		return true, e.enterGuest(ctx)

	default:
		if e.state == StateBound && e.userID == *session.UserID {
			return false, nil
		}

		_, err := e.mergeThenLoad(ctx, *session.UserID)

		return true, err
	}
}

// followOrWarn is follow for request paths: a failed move leaves the engine
// settling and is retried by the next call.
func (e *Engine) followOrWarn(ctx context.Context, session *entity.Session) bool {
	if session == nil {
		return false
	}

	loaded, err := e.follow(ctx, *session)
	if err != nil {
		e.logger.WarnContext(ctx, "Cart could not follow the request session", slog.Any("error", err))

		return false
	}

	return loaded
}

// load follows session and returns the published cart with the state it was
// read in. A bound cart is re-read from the server store unless following just
// loaded it; a failed re-read keeps the previous snapshot.
func (e *Engine) load(ctx context.Context, session *entity.Session) (entity.CartSnapshot, State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	loaded := e.followOrWarn(ctx, session)
	if e.state == StateBound && !loaded {
		if err := e.refreshServer(ctx, e.cartID); err != nil {
			e.logger.WarnContext(ctx, "Serving previous cart, server re-read failed", slog.Any("error", err))
		}
	}

	return e.Snapshot(), e.state
}

// Refresh re-reads the server cart of a bound engine. Guest and settling
// engines are left alone. The snapshot is only replaced when the read succeeds.
func (e *Engine) Refresh(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateBound {
		return nil
	}
	if err := e.refreshServer(ctx, e.cartID); err != nil {
		return errors.Wrap(err, "refresh server cart")
	}

	return nil
}

func (e *Engine) resetBinding() {
	e.state = StateSettling
	e.userID = uuid.Nil
	e.cartID = uuid.Nil
}

// enterGuest drops any server binding and republishes the guest store.
// Server lines are never copied back into the guest store.
func (e *Engine) enterGuest(ctx context.Context) error {
	from := e.state
	e.resetBinding()
	e.setLoading(true)

	if err := e.refreshGuest(ctx); err != nil {
		e.setLoading(false)

		return errors.Wrap(err, "load guest cart")
	}

	e.state = StateGuest
	e.logger.InfoContext(ctx, "Cart entered guest mode", slog.String("from", from.String()))

	return nil
}

// mergeThenLoad folds the guest cart into the user's server cart, clears the
// guest store and publishes the fresh server cart. Per-line merge failures are
// logged and skipped; the guest store is cleared regardless.
func (e *Engine) mergeThenLoad(ctx context.Context, userID uuid.UUID) (MergeReport, error) {
	e.resetBinding()
	e.setLoading(true)

	report := MergeReport{}

	var guestLines []entity.CartLine
	guestErr := e.call(ctx, func(ctx context.Context) error {
		var err error
		guestLines, err = e.deps.Guest.Load(ctx, e.deviceID)

		return err
	})
	if guestErr != nil {
		// Without a readable guest cart there is nothing safe to merge or clear.
		e.logger.WarnContext(ctx, "Skipping guest cart merge, guest store unreadable", slog.Any("error", guestErr))
	}
	report.GuestLines = len(guestLines)

	cartID, err := e.resolveCart(ctx, userID)
	if err != nil {
		e.setLoading(false)

		return report, errors.Wrap(err, "resolve server cart")
	}
	report.CartID = cartID

	for _, line := range guestLines {
		if line.Quantity <= 0 {
			continue
		}
		if err := e.accumulate(ctx, cartID, line.VariantID, line.Quantity); err != nil {
			report.FailedLines++
			e.logger.WarnContext(ctx, "Failed to merge guest cart line",
				slog.String("variantID", line.VariantID.String()),
				slog.Int("quantity", line.Quantity),
				slog.Any("error", err),
			)

			continue
		}
		report.MergedLines++
	}

	if guestErr == nil {
		if err := e.call(ctx, func(ctx context.Context) error {
			return e.deps.Guest.Clear(ctx, e.deviceID)
		}); err != nil {
			e.logger.ErrorContext(ctx, "Failed to clear guest cart after merge", slog.Any("error", err))
		}
	}

	if err := e.refreshServer(ctx, cartID); err != nil {
		e.setLoading(false)

		return report, errors.Wrap(err, "load server cart")
	}

	e.state = StateBound
	e.userID = userID
	e.cartID = cartID

	e.logger.InfoContext(ctx, "Guest cart merged into server cart",
		slog.String("userID", userID.String()),
		slog.String("cartID", cartID.String()),
		slog.Int("guestLines", report.GuestLines),
		slog.Int("mergedLines", report.MergedLines),
		slog.Int("failedLines", report.FailedLines),
	)

	e.emit(ctx, &service.CartEvent{
		Type:        service.CartEventMerged,
		UserID:      userID.String(),
		CartID:      cartID.String(),
		MergedLines: report.MergedLines,
		FailedLines: report.FailedLines,
	})

	return report, nil
}

// resolveCart finds the user's cart or creates it. A concurrent creator wins
// the unique constraint, in which case the existing cart is read back.
func (e *Engine) resolveCart(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var cart *entity.Cart
	err := e.call(ctx, func(ctx context.Context) error {
		var err error
		cart, err = e.deps.Store.FindCartByUser(ctx, userID)

		return err
	})
	if err == nil {
		return cart.ID, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return uuid.Nil, err
	}

	err = e.call(ctx, func(ctx context.Context) error {
		var err error
		cart, err = e.deps.Store.CreateCart(ctx, userID)

		return err
	})
	if errors.Is(err, repository.ErrDuplicateCart) {
		err = e.call(ctx, func(ctx context.Context) error {
			var err error
			cart, err = e.deps.Store.FindCartByUser(ctx, userID)

			return err
		})
	}
	if err != nil {
		return uuid.Nil, err
	}

	return cart.ID, nil
}

// accumulate adds quantity to the server line of variantID, inserting it if absent.
func (e *Engine) accumulate(ctx context.Context, cartID, variantID uuid.UUID, quantity int) error {
	err := e.addToExisting(ctx, cartID, variantID, quantity)
	if !errors.Is(err, repository.ErrCartItemNotFound) {
		return err
	}

	err = e.call(ctx, func(ctx context.Context) error {
		return e.deps.Store.InsertCartItem(ctx, cartID, variantID, quantity)
	})
	if errors.Is(err, repository.ErrDuplicateCartItem) {
		// Lost an insert race; the row exists now.
		return e.addToExisting(ctx, cartID, variantID, quantity)
	}

	return err
}

func (e *Engine) addToExisting(ctx context.Context, cartID, variantID uuid.UUID, quantity int) error {
	var row *entity.CartItemRow
	if err := e.call(ctx, func(ctx context.Context) error {
		var err error
		row, err = e.deps.Store.FindCartItem(ctx, cartID, variantID)

		return err
	}); err != nil {
		return err
	}

	return e.call(ctx, func(ctx context.Context) error {
		return e.deps.Store.UpdateCartItemQuantity(ctx, row.ID, row.Quantity+quantity)
	})
}

func (e *Engine) refreshServer(ctx context.Context, cartID uuid.UUID) error {
	var lines []entity.CartLine
	if err := e.call(ctx, func(ctx context.Context) error {
		var err error
		lines, err = e.deps.Store.ListCartItems(ctx, cartID)

		return err
	}); err != nil {
		return err
	}

	enriched, err := e.enrich(ctx, lines)
	if err != nil {
		return err
	}
	e.publish(enriched)

	return nil
}

func (e *Engine) refreshGuest(ctx context.Context) error {
	lines, err := e.loadGuest(ctx)
	if err != nil {
		return err
	}

	return e.publishGuest(ctx, lines)
}

func (e *Engine) publishGuest(ctx context.Context, lines []entity.CartLine) error {
	enriched, err := e.enrich(ctx, lines)
	if err != nil {
		return err
	}
	e.publish(enriched)

	return nil
}

func (e *Engine) loadGuest(ctx context.Context) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := e.call(ctx, func(ctx context.Context) error {
		var err error
		lines, err = e.deps.Guest.Load(ctx, e.deviceID)

		return err
	})

	return lines, err
}

func (e *Engine) saveGuest(ctx context.Context, lines []entity.CartLine) error {
	return e.call(ctx, func(ctx context.Context) error {
		return e.deps.Guest.Save(ctx, e.deviceID, lines)
	})
}

func (e *Engine) emit(ctx context.Context, event *service.CartEvent) {
	if e.deps.Publisher == nil {
		return
	}

	event.DeviceID = e.deviceID.String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := e.deps.Publisher.PublishCartEvent(ctx, event); err != nil {
		e.logger.WarnContext(ctx, "Failed to publish cart event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}

// --- Mutators ---

// AddItem increments the line of variantID by quantity, creating it if needed.
// A non-positive quantity is a no-op.
func (e *Engine) AddItem(ctx context.Context, variantID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return nil
	}

	_, err := e.addItem(ctx, nil, variantID, quantity)

	return err
}

func (e *Engine) addItem(ctx context.Context, session *entity.Session, variantID uuid.UUID, quantity int) (entity.CartSnapshot, error) {
	return e.mutate(ctx, session, "add item",
		func(ctx context.Context) error {
			return e.accumulate(ctx, e.cartID, variantID, quantity)
		},
		func(lines []entity.CartLine) []entity.CartLine {
			for i := range lines {
				if lines[i].VariantID == variantID {
					lines[i].Quantity += quantity

					return lines
				}
			}

			return append(lines, entity.CartLine{VariantID: variantID, Quantity: quantity})
		},
	)
}

// UpdateQuantity sets the quantity of variantID. A non-positive quantity removes the line.
// Updating a line that does not exist changes nothing.
func (e *Engine) UpdateQuantity(ctx context.Context, variantID uuid.UUID, quantity int) error {
	_, err := e.updateQuantity(ctx, nil, variantID, quantity)

	return err
}

func (e *Engine) updateQuantity(ctx context.Context, session *entity.Session, variantID uuid.UUID, quantity int) (entity.CartSnapshot, error) {
	if quantity <= 0 {
		return e.removeItem(ctx, session, variantID)
	}

	return e.mutate(ctx, session, "update quantity",
		func(ctx context.Context) error {
			var row *entity.CartItemRow
			err := e.call(ctx, func(ctx context.Context) error {
				var err error
				row, err = e.deps.Store.FindCartItem(ctx, e.cartID, variantID)

				return err
			})
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return nil
			}
			if err != nil {
				return err
			}

			return e.call(ctx, func(ctx context.Context) error {
				return e.deps.Store.UpdateCartItemQuantity(ctx, row.ID, quantity)
			})
		},
		func(lines []entity.CartLine) []entity.CartLine {
			for i := range lines {
				if lines[i].VariantID == variantID {
					lines[i].Quantity = quantity
				}
			}

			return lines
		},
	)
}

// RemoveItem deletes the line of variantID. An absent line is not an error.
func (e *Engine) RemoveItem(ctx context.Context, variantID uuid.UUID) error {
	_, err := e.removeItem(ctx, nil, variantID)

	return err
}

func (e *Engine) removeItem(ctx context.Context, session *entity.Session, variantID uuid.UUID) (entity.CartSnapshot, error) {
	return e.mutate(ctx, session, "remove item",
		func(ctx context.Context) error {
			return e.call(ctx, func(ctx context.Context) error {
				return e.deps.Store.DeleteCartItem(ctx, e.cartID, variantID)
			})
		},
		func(lines []entity.CartLine) []entity.CartLine {
			kept := lines[:0]
			for _, line := range lines {
				if line.VariantID != variantID {
					kept = append(kept, line)
				}
			}

			return kept
		},
	)
}

// ClearCart deletes every line of the active cart.
func (e *Engine) ClearCart(ctx context.Context) error {
	_, err := e.clearCart(ctx, nil)

	return err
}

func (e *Engine) clearCart(ctx context.Context, session *entity.Session) (entity.CartSnapshot, error) {
	// Filled under e.mu so the event names the cart that was actually cleared.
	event := &service.CartEvent{Type: service.CartEventCleared}

	snapshot, err := e.mutate(ctx, session, "clear cart",
		func(ctx context.Context) error {
			event.UserID = e.userID.String()
			event.CartID = e.cartID.String()

			return e.call(ctx, func(ctx context.Context) error {
				return e.deps.Store.DeleteAllCartItems(ctx, e.cartID)
			})
		},
		func([]entity.CartLine) []entity.CartLine {
			return []entity.CartLine{}
		},
	)
	if err != nil {
		return snapshot, err
	}

	e.emit(ctx, event)

	return snapshot, nil
}

// mutate follows session, applies a change to whichever store is active and
// republishes, all under e.mu. The snapshot is only replaced after the refresh
// read succeeds, and the returned snapshot is the one published by this call.
func (e *Engine) mutate(
	ctx context.Context,
	session *entity.Session,
	op string,
	onServer func(ctx context.Context) error,
	onGuest func(lines []entity.CartLine) []entity.CartLine,
) (entity.CartSnapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.followOrWarn(ctx, session)

	switch e.state {
	case StateBound:
		if err := onServer(ctx); err != nil {
			return entity.CartSnapshot{}, e.storeFailure(ctx, op, err)
		}
		if err := e.refreshServer(ctx, e.cartID); err != nil {
			return entity.CartSnapshot{}, e.storeFailure(ctx, op+": refresh", err)
		}

		return e.Snapshot(), nil

	case StateGuest:
		lines, err := e.loadGuest(ctx)
		if err != nil {
			return entity.CartSnapshot{}, e.storeFailure(ctx, op+": load guest cart", err)
		}
		lines = onGuest(lines)
		if err := e.saveGuest(ctx, lines); err != nil {
			return entity.CartSnapshot{}, e.storeFailure(ctx, op+": save guest cart", err)
		}
		if err := e.publishGuest(ctx, lines); err != nil {
			return entity.CartSnapshot{}, e.storeFailure(ctx, op+": enrich", err)
		}

		return e.Snapshot(), nil

	default:
		e.logger.DebugContext(ctx, "Cart mutation ignored while settling", slog.String("op", op))

		return entity.CartSnapshot{}, domainerrors.ErrCartSettling
	}
}

func (e *Engine) storeFailure(ctx context.Context, op string, err error) error {
	e.logger.WarnContext(ctx, "Cart mutation failed",
		slog.String("op", op),
		slog.String("state", e.state.String()),
		slog.Any("error", err),
	)

	return errors.Wrap(domainerrors.ErrCartStoreFailed, op)
}
