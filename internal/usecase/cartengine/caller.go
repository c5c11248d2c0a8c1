package cartengine

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Caller is the engine acting for one request identity. Every operation
// first moves the engine to that identity and then reads or writes, under a
// single hold of the engine lock. A guest request therefore never sees or
// changes the server cart of a user signed in on the same device, and a
// signed-in request never writes to the guest store.
type Caller struct {
	engine  *Engine
	session entity.Session
}

// As returns the engine acting for session.
func (e *Engine) As(session entity.Session) *Caller {
	return &Caller{engine: e, session: session}
}

// Load returns the caller's cart and the state it was read in.
func (c *Caller) Load(ctx context.Context) (entity.CartSnapshot, State) {
	return c.engine.load(ctx, &c.session)
}

// AddItem increments the line of variantID. A non-positive quantity only loads the cart.
func (c *Caller) AddItem(ctx context.Context, variantID uuid.UUID, quantity int) (entity.CartSnapshot, error) {
	if quantity <= 0 {
		snapshot, _ := c.Load(ctx)

		return snapshot, nil
	}

	return c.engine.addItem(ctx, &c.session, variantID, quantity)
}

// UpdateQuantity sets the quantity of variantID, removing the line when quantity <= 0.
func (c *Caller) UpdateQuantity(ctx context.Context, variantID uuid.UUID, quantity int) (entity.CartSnapshot, error) {
	return c.engine.updateQuantity(ctx, &c.session, variantID, quantity)
}

// RemoveItem deletes the line of variantID.
func (c *Caller) RemoveItem(ctx context.Context, variantID uuid.UUID) (entity.CartSnapshot, error) {
	return c.engine.removeItem(ctx, &c.session, variantID)
}

// ClearCart deletes every line of the caller's cart.
func (c *Caller) ClearCart(ctx context.Context) (entity.CartSnapshot, error) {
	return c.engine.clearCart(ctx, &c.session)
}
