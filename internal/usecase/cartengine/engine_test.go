package cartengine

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engineFixture struct {
	deviceID  uuid.UUID
	store     *memCartStore
	guest     *memGuestStore
	catalog   *memCatalog
	publisher *recordingPublisher
	engine    *Engine
}

func newFixture(t *testing.T, variants ...*entity.Variant) *engineFixture {
	t.Helper()

	f := &engineFixture{
		deviceID:  uuid.New(),
		store:     newMemCartStore(),
		guest:     newMemGuestStore(),
		catalog:   newMemCatalog(variants...),
		publisher: &recordingPublisher{},
	}
	f.engine = New(f.deviceID, Deps{
		Store:     f.store,
		Catalog:   f.catalog,
		Guest:     f.guest,
		Publisher: f.publisher,
	})

	return f
}

func (f *engineFixture) asGuest(t *testing.T) {
	t.Helper()
	require.NoError(t, f.engine.HandleSessionChange(context.Background(), entity.GuestSession()))
	require.Equal(t, StateGuest, f.engine.State())
}

func (f *engineFixture) signIn(t *testing.T, userID uuid.UUID) {
	t.Helper()
	require.NoError(t, f.engine.HandleSessionChange(context.Background(), entity.UserSession(userID)))
	require.Equal(t, StateBound, f.engine.State())
}

func variant(price float64, salePrice *float64) *entity.Variant {
	return &entity.Variant{
		ID:        uuid.New(),
		Color:     "black",
		Size:      "M",
		Price:     price,
		SalePrice: salePrice,
		Stock:     10,
		Product: &entity.Product{
			Slug:  "hoodie-classic",
			Title: "Classic Hoodie",
			Images: []entity.ProductImage{
				{URL: "https://cdn.example.com/back.jpg", Sort: 2},
				{URL: "https://cdn.example.com/front.jpg", Sort: 0},
			},
		},
	}
}

func price(v float64) *float64 { return &v }

func linesByVariant(lines []entity.CartLine) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		out[line.VariantID] += line.Quantity
	}

	return out
}

func TestEngine_StartsSettlingAndRejectsMutations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, StateSettling, f.engine.State())
	assert.True(t, f.engine.Snapshot().Loading)

	err := f.engine.AddItem(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, domainerrors.ErrCartSettling)
	assert.Empty(t, f.guest.stored(f.deviceID))
}

func TestEngine_MergeDuplicateGuestLinesIntoEmptyServerCart(t *testing.T) {
	v1, v2 := variant(100, nil), variant(50, nil)
	f := newFixture(t, v1, v2)
	userID := uuid.New()

	f.guest.data[f.deviceID] = []entity.CartLine{
		{VariantID: v1.ID, Quantity: 2},
		{VariantID: v2.ID, Quantity: 1},
		{VariantID: v1.ID, Quantity: 3},
	}

	f.signIn(t, userID)

	server := f.store.lines(userID)
	assert.Len(t, server, 2)
	assert.Equal(t, map[uuid.UUID]int{v1.ID: 5, v2.ID: 1}, linesByVariant(server))
}

func TestEngine_MergeAccumulatesOnConflict(t *testing.T) {
	v := variant(100, nil)
	f := newFixture(t, v)
	userID := uuid.New()
	f.store.seed(userID, entity.CartLine{VariantID: v.ID, Quantity: 3})
	f.guest.data[f.deviceID] = []entity.CartLine{{VariantID: v.ID, Quantity: 2}}

	f.signIn(t, userID)

	assert.Equal(t, []entity.CartLine{{VariantID: v.ID, Quantity: 5}}, f.store.lines(userID))
	snap := f.engine.Snapshot()
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 5, snap.Lines[0].Quantity)
}

func TestEngine_MergeClearsGuestStore(t *testing.T) {
	tests := []struct {
		name  string
		guest []entity.CartLine
	}{
		{name: "empty guest cart"},
		{name: "non-empty guest cart", guest: []entity.CartLine{{VariantID: uuid.New(), Quantity: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.guest != nil {
				f.guest.data[f.deviceID] = tt.guest
			}

			f.signIn(t, uuid.New())

			lines, err := f.guest.Load(context.Background(), f.deviceID)
			require.NoError(t, err)
			assert.Empty(t, lines)
		})
	}
}

func TestEngine_MergeCreatesCartOnce(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	f.signIn(t, userID)
	f.asGuest(t)
	f.signIn(t, userID)

	assert.Equal(t, 1, f.store.createCalls)
}

func TestEngine_MergeContinuesPastFailedLine(t *testing.T) {
	good, bad := variant(10, nil), variant(20, nil)
	f := newFixture(t, good, bad)
	userID := uuid.New()
	f.store.failInsertOn[bad.ID] = true
	f.guest.data[f.deviceID] = []entity.CartLine{
		{VariantID: bad.ID, Quantity: 1},
		{VariantID: good.ID, Quantity: 2},
	}

	f.signIn(t, userID)

	assert.Equal(t, map[uuid.UUID]int{good.ID: 2}, linesByVariant(f.store.lines(userID)))
	// The failed line is dropped along with the guest store.
	assert.Empty(t, f.guest.stored(f.deviceID))

	require.NotEmpty(t, f.publisher.events)
	merged := f.publisher.events[len(f.publisher.events)-1]
	assert.Equal(t, service.CartEventMerged, merged.Type)
	assert.Equal(t, 1, merged.MergedLines)
	assert.Equal(t, 1, merged.FailedLines)
	assert.Equal(t, f.deviceID.String(), merged.DeviceID)
}

func TestEngine_MergeSkippedWhenGuestStoreUnreadable(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	f.guest.data[f.deviceID] = []entity.CartLine{{VariantID: uuid.New(), Quantity: 1}}
	f.guest.failLoad = true

	f.signIn(t, userID)

	assert.Empty(t, f.store.lines(userID))
	f.guest.failLoad = false
	assert.Len(t, f.guest.stored(f.deviceID), 1, "unread guest cart must not be cleared")
}

func TestEngine_BindFailureStaysSettlingAndRetries(t *testing.T) {
	v := variant(10, nil)
	f := newFixture(t, v)
	ctx := context.Background()
	userID := uuid.New()
	f.guest.data[f.deviceID] = []entity.CartLine{{VariantID: v.ID, Quantity: 2}}
	f.store.failFind = true

	err := f.engine.HandleSessionChange(ctx, entity.UserSession(userID))
	require.Error(t, err)
	assert.Equal(t, StateSettling, f.engine.State())
	assert.False(t, f.engine.Snapshot().Loading)
	assert.Len(t, f.guest.stored(f.deviceID), 1, "guest cart survives a failed resolution")
	assert.ErrorIs(t, f.engine.AddItem(ctx, v.ID, 1), domainerrors.ErrCartSettling)

	f.store.failFind = false
	require.NoError(t, f.engine.HandleSessionChange(ctx, entity.UserSession(userID)))
	assert.Equal(t, StateBound, f.engine.State())
	assert.Equal(t, []entity.CartLine{{VariantID: v.ID, Quantity: 2}}, f.store.lines(userID))
}

func TestEngine_AddItemAccumulates(t *testing.T) {
	v := variant(10, nil)

	t.Run("guest", func(t *testing.T) {
		f := newFixture(t, v)
		f.asGuest(t)
		ctx := context.Background()

		require.NoError(t, f.engine.AddItem(ctx, v.ID, 1))
		require.NoError(t, f.engine.AddItem(ctx, v.ID, 1))

		assert.Equal(t, []entity.CartLine{{VariantID: v.ID, Quantity: 2}}, f.guest.stored(f.deviceID))
		snap := f.engine.Snapshot()
		require.Len(t, snap.Lines, 1)
		assert.Equal(t, 2, snap.ItemCount())
	})

	t.Run("bound", func(t *testing.T) {
		f := newFixture(t, v)
		userID := uuid.New()
		f.signIn(t, userID)
		ctx := context.Background()

		require.NoError(t, f.engine.AddItem(ctx, v.ID, 1))
		require.NoError(t, f.engine.AddItem(ctx, v.ID, 1))

		assert.Equal(t, []entity.CartLine{{VariantID: v.ID, Quantity: 2}}, f.store.lines(userID))
		assert.Equal(t, 2, f.engine.Snapshot().ItemCount())
	})
}

func TestEngine_AddItemNonPositiveIsNoop(t *testing.T) {
	v := variant(10, nil)
	f := newFixture(t, v)
	f.asGuest(t)
	ctx := context.Background()

	require.NoError(t, f.engine.AddItem(ctx, v.ID, 0))
	require.NoError(t, f.engine.AddItem(ctx, v.ID, -2))

	assert.Empty(t, f.guest.stored(f.deviceID))
}

func TestEngine_UpdateQuantityNonPositiveRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		v, other := variant(10, nil), variant(5, nil)

		t.Run("guest", func(t *testing.T) {
			f := newFixture(t, v, other)
			f.asGuest(t)
			ctx := context.Background()
			require.NoError(t, f.engine.AddItem(ctx, v.ID, 3))
			require.NoError(t, f.engine.AddItem(ctx, other.ID, 1))

			require.NoError(t, f.engine.UpdateQuantity(ctx, v.ID, qty))

			assert.Equal(t, []entity.CartLine{{VariantID: other.ID, Quantity: 1}}, f.guest.stored(f.deviceID))
		})

		t.Run("bound", func(t *testing.T) {
			f := newFixture(t, v, other)
			userID := uuid.New()
			f.store.seed(userID, entity.CartLine{VariantID: v.ID, Quantity: 3}, entity.CartLine{VariantID: other.ID, Quantity: 1})
			f.signIn(t, userID)

			require.NoError(t, f.engine.UpdateQuantity(context.Background(), v.ID, qty))

			assert.Equal(t, []entity.CartLine{{VariantID: other.ID, Quantity: 1}}, f.store.lines(userID))
			require.Len(t, f.engine.Snapshot().Lines, 1)
		})
	}
}

func TestEngine_UpdateQuantitySetsValue(t *testing.T) {
	v := variant(10, nil)
	f := newFixture(t, v)
	userID := uuid.New()
	f.store.seed(userID, entity.CartLine{VariantID: v.ID, Quantity: 3})
	f.signIn(t, userID)
	ctx := context.Background()

	require.NoError(t, f.engine.UpdateQuantity(ctx, v.ID, 7))
	assert.Equal(t, []entity.CartLine{{VariantID: v.ID, Quantity: 7}}, f.store.lines(userID))

	// Absent lines are left alone.
	require.NoError(t, f.engine.UpdateQuantity(ctx, uuid.New(), 4))
	assert.Len(t, f.store.lines(userID), 1)
}

func TestEngine_RemoveAbsentIsNotAnError(t *testing.T) {
	f := newFixture(t)
	f.asGuest(t)

	assert.NoError(t, f.engine.RemoveItem(context.Background(), uuid.New()))
}

func TestEngine_ClearCart(t *testing.T) {
	v := variant(10, nil)
	f := newFixture(t, v)
	userID := uuid.New()
	cartID := f.store.seed(userID, entity.CartLine{VariantID: v.ID, Quantity: 3})
	f.signIn(t, userID)

	require.NoError(t, f.engine.ClearCart(context.Background()))

	assert.Empty(t, f.store.lines(userID))
	assert.Empty(t, f.engine.Snapshot().Lines)
	cleared := f.publisher.last()
	require.NotNil(t, cleared)
	assert.Equal(t, service.CartEventCleared, cleared.Type)
	assert.Equal(t, userID.String(), cleared.UserID)
	assert.Equal(t, cartID.String(), cleared.CartID)
}

func TestEngine_ClearCartEventNamesTheClearedCart(t *testing.T) {
	v := variant(10, nil)
	f := newFixture(t, v)
	ctx := context.Background()
	first, second := uuid.New(), uuid.New()
	firstCart := f.store.seed(first, entity.CartLine{VariantID: v.ID, Quantity: 1})
	f.store.seed(second, entity.CartLine{VariantID: v.ID, Quantity: 2})
	f.signIn(t, first)

	// The caller rebinds to second inside the same locked step as the clear.
	_, err := f.engine.As(entity.UserSession(second)).ClearCart(ctx)
	require.NoError(t, err)

	cleared := f.publisher.last()
	require.NotNil(t, cleared)
	assert.Equal(t, second.String(), cleared.UserID)
	assert.NotEqual(t, firstCart.String(), cleared.CartID)
	assert.Len(t, f.store.lines(first), 1)
	assert.Empty(t, f.store.lines(second))
}

func TestEngine_DerivedTotals(t *testing.T) {
	discounted, full := variant(100, price(80)), variant(50, nil)
	f := newFixture(t, discounted, full)
	f.asGuest(t)
	ctx := context.Background()

	require.NoError(t, f.engine.AddItem(ctx, discounted.ID, 2))
	require.NoError(t, f.engine.AddItem(ctx, full.ID, 1))

	snap := f.engine.Snapshot()
	assert.InDelta(t, 210.0, snap.Total(), 0.0001)
	assert.Equal(t, 3, snap.ItemCount())
}

func TestEngine_GuestRoundTripAcrossBoot(t *testing.T) {
	v1, v2 := variant(10, nil), variant(20, nil)
	f := newFixture(t, v1, v2)
	f.asGuest(t)
	ctx := context.Background()

	require.NoError(t, f.engine.AddItem(ctx, v1.ID, 2))
	require.NoError(t, f.engine.AddItem(ctx, v2.ID, 1))
	before := f.engine.Snapshot()

	rebooted := New(f.deviceID, Deps{Store: f.store, Catalog: f.catalog, Guest: f.guest})
	require.NoError(t, rebooted.HandleSessionChange(ctx, entity.GuestSession()))

	after := rebooted.Snapshot()
	assert.Equal(t, before.Lines, after.Lines)
}

func TestEngine_SignOutDoesNotCopyServerLines(t *testing.T) {
	serverOnly, guestAfter := variant(10, nil), variant(20, nil)
	f := newFixture(t, serverOnly, guestAfter)
	ctx := context.Background()
	userID := uuid.New()
	f.store.seed(userID, entity.CartLine{VariantID: serverOnly.ID, Quantity: 4})

	f.asGuest(t)
	f.signIn(t, userID)
	require.Len(t, f.engine.Snapshot().Lines, 1)

	f.asGuest(t)
	assert.Empty(t, f.guest.stored(f.deviceID))
	assert.Empty(t, f.engine.Snapshot().Lines)

	require.NoError(t, f.engine.AddItem(ctx, guestAfter.ID, 1))
	assert.Equal(t, []entity.CartLine{{VariantID: guestAfter.ID, Quantity: 1}}, f.guest.stored(f.deviceID))
}

func TestEngine_EnrichmentKeepsMissingVariants(t *testing.T) {
	known := variant(30, nil)
	f := newFixture(t, known)
	f.asGuest(t)
	ctx := context.Background()
	missing := uuid.New()

	require.NoError(t, f.engine.AddItem(ctx, known.ID, 1))
	require.NoError(t, f.engine.AddItem(ctx, missing, 2))

	snap := f.engine.Snapshot()
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, "https://cdn.example.com/front.jpg", snap.Lines[0].Product.ImageURL)
	assert.Nil(t, snap.Lines[1].Variant)
	assert.Nil(t, snap.Lines[1].Product)
	assert.InDelta(t, 30.0, snap.Total(), 0.0001)
	assert.Equal(t, 3, snap.ItemCount())
	assert.Equal(t, entity.FallbackProductTitle, snap.Items()[1].Title)
}

func TestEngine_EmptyCartSkipsCatalog(t *testing.T) {
	f := newFixture(t)
	f.asGuest(t)

	assert.Equal(t, 0, f.catalog.calls)
}

func TestEngine_FailedMutationKeepsSnapshot(t *testing.T) {
	v := variant(10, nil)
	f := newFixture(t, v)
	userID := uuid.New()
	f.store.seed(userID, entity.CartLine{VariantID: v.ID, Quantity: 1})
	f.signIn(t, userID)
	before := f.engine.Snapshot()

	f.store.failUpdate = true
	err := f.engine.AddItem(context.Background(), v.ID, 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartStoreFailed))
	assert.Equal(t, before, f.engine.Snapshot())
}

func TestEngine_RefreshFailureKeepsSnapshot(t *testing.T) {
	v := variant(10, nil)
	f := newFixture(t, v)
	f.asGuest(t)
	ctx := context.Background()
	require.NoError(t, f.engine.AddItem(ctx, v.ID, 1))
	before := f.engine.Snapshot()

	f.catalog.fail = true
	err := f.engine.AddItem(ctx, v.ID, 1)

	require.Error(t, err)
	assert.Equal(t, before, f.engine.Snapshot())
	// The write itself went through; the next refresh will show it.
	assert.Equal(t, []entity.CartLine{{VariantID: v.ID, Quantity: 2}}, f.guest.stored(f.deviceID))
}

func TestEngine_RepeatedSessionIsNoop(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	f.signIn(t, userID)
	merges := len(f.publisher.events)
	f.signIn(t, userID)

	assert.Equal(t, merges, len(f.publisher.events))
}

func TestEngine_LoadingSessionReturnsToSettling(t *testing.T) {
	f := newFixture(t)
	f.asGuest(t)

	require.NoError(t, f.engine.HandleSessionChange(context.Background(), entity.LoadingSession()))

	assert.Equal(t, StateSettling, f.engine.State())
	assert.True(t, f.engine.Snapshot().Loading)
}
