package guestcart

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) (*blobStore, func()) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	store := NewBlobStore(bucket, "ot_cart_v1", nil).(*blobStore)

	return store, func() { _ = bucket.Close() }
}

func TestBlobStore_LoadMissingIsEmpty(t *testing.T) {
	store, closeFn := newTestStore(t)
	defer closeFn()

	lines, err := store.Load(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestBlobStore_SaveLoadClear(t *testing.T) {
	store, closeFn := newTestStore(t)
	defer closeFn()

	ctx := context.Background()
	deviceID := uuid.New()
	want := []entity.CartLine{
		{VariantID: uuid.New(), Quantity: 2},
		{VariantID: uuid.New(), Quantity: 1},
	}

	require.NoError(t, store.Save(ctx, deviceID, want))

	got, err := store.Load(ctx, deviceID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Clear(ctx, deviceID))

	got, err = store.Load(ctx, deviceID)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Clearing twice is fine.
	require.NoError(t, store.Clear(ctx, deviceID))
}

func TestBlobStore_DevicesAreIsolated(t *testing.T) {
	store, closeFn := newTestStore(t)
	defer closeFn()

	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	require.NoError(t, store.Save(ctx, a, []entity.CartLine{{VariantID: uuid.New(), Quantity: 3}}))

	got, err := store.Load(ctx, b)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBlobStore_CorruptDataIsEmpty(t *testing.T) {
	store, closeFn := newTestStore(t)
	defer closeFn()

	ctx := context.Background()
	deviceID := uuid.New()
	require.NoError(t, store.bucket.WriteAll(ctx, store.key(deviceID), []byte("{not json"), nil))

	got, err := store.Load(ctx, deviceID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBlobStore_DropsNonPositiveQuantities(t *testing.T) {
	store, closeFn := newTestStore(t)
	defer closeFn()

	ctx := context.Background()
	deviceID := uuid.New()
	keep := uuid.New()
	raw := `[{"variantId":"` + keep.String() + `","quantity":2},{"variantId":"` + uuid.NewString() + `","quantity":0}]`
	require.NoError(t, store.bucket.WriteAll(ctx, store.key(deviceID), []byte(raw), nil))

	got, err := store.Load(ctx, deviceID)
	require.NoError(t, err)
	assert.Equal(t, []entity.CartLine{{VariantID: keep, Quantity: 2}}, got)
}

func TestBlobStore_KeyLayout(t *testing.T) {
	store, closeFn := newTestStore(t)
	defer closeFn()

	deviceID := uuid.MustParse("7f0c2b8e-51f1-4a5b-9a51-9f4f8b0b1a11")
	assert.Equal(t, "ot_cart_v1/7f0c2b8e-51f1-4a5b-9a51-9f4f8b0b1a11.json", store.key(deviceID))
}
