package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"
	"storefront/internal/usecase/cartengine"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface on top of the engine registry.
type cartService struct {
	registry *cartengine.Registry
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(registry *cartengine.Registry, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		registry: registry,
		logger:   logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// caller returns the device's engine acting for the requesting identity.
func (srv *cartService) caller(owner usecase.CartOwner) *cartengine.Caller {
	return srv.registry.Engine(owner.DeviceID).As(owner.Session())
}

// GetCart returns the owner's cart, re-read from the server store when signed in.
func (srv *cartService) GetCart(ctx context.Context, owner usecase.CartOwner) (*usecase.CartOutput, error) {
	snapshot, _ := srv.caller(owner).Load(ctx)

	return usecase.NewCartOutput(snapshot), nil
}

// AddItem adds quantity units of the variant.
func (srv *cartService) AddItem(ctx context.Context, owner usecase.CartOwner, variantID uuid.UUID, quantity int) (*usecase.CartOutput, error) {
	snapshot, err := srv.caller(owner).AddItem(ctx, variantID, quantity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	return usecase.NewCartOutput(snapshot), nil
}

// UpdateQuantity sets the quantity of the variant, removing it when quantity <= 0.
func (srv *cartService) UpdateQuantity(ctx context.Context, owner usecase.CartOwner, variantID uuid.UUID, quantity int) (*usecase.CartOutput, error) {
	snapshot, err := srv.caller(owner).UpdateQuantity(ctx, variantID, quantity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update cart item quantity")
	}

	return usecase.NewCartOutput(snapshot), nil
}

// RemoveItem drops the variant from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, owner usecase.CartOwner, variantID uuid.UUID) (*usecase.CartOutput, error) {
	snapshot, err := srv.caller(owner).RemoveItem(ctx, variantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return usecase.NewCartOutput(snapshot), nil
}

// ClearCart empties the cart.
func (srv *cartService) ClearCart(ctx context.Context, owner usecase.CartOwner) (*usecase.CartOutput, error) {
	snapshot, err := srv.caller(owner).ClearCart(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	return usecase.NewCartOutput(snapshot), nil
}
