package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartOutput is the published cart of one device.
type CartOutput struct {
	Loading   bool
	Items     []entity.CartItem
	Lines     []entity.EnrichedLine
	Total     float64
	ItemCount int
}

// NewCartOutput derives the output from a snapshot.
func NewCartOutput(snapshot entity.CartSnapshot) *CartOutput {
	return &CartOutput{
		Loading:   snapshot.Loading,
		Items:     snapshot.Items(),
		Lines:     snapshot.Lines,
		Total:     snapshot.Total(),
		ItemCount: snapshot.ItemCount(),
	}
}

// CartOwner is who a cart request speaks for: the device and, when the
// request is signed in, its user.
type CartOwner struct {
	DeviceID uuid.UUID
	UserID   *uuid.UUID
}

// Session is the identity the device's cart follows while serving the request.
func (o CartOwner) Session() entity.Session {
	if o.UserID == nil {
		return entity.GuestSession()
	}

	return entity.UserSession(*o.UserID)
}

// CartUsecase exposes the cart of a device. Every call first brings the
// device's cart in line with the requesting identity, then reads or mutates it.
type CartUsecase interface {
	GetCart(ctx context.Context, owner CartOwner) (*CartOutput, error)
	AddItem(ctx context.Context, owner CartOwner, variantID uuid.UUID, quantity int) (*CartOutput, error)
	UpdateQuantity(ctx context.Context, owner CartOwner, variantID uuid.UUID, quantity int) (*CartOutput, error)
	RemoveItem(ctx context.Context, owner CartOwner, variantID uuid.UUID) (*CartOutput, error)
	ClearCart(ctx context.Context, owner CartOwner) (*CartOutput, error)
}
