// Package guestcart stores device-scoped guest carts in a blob bucket.
package guestcart

import (
	"context"
	"encoding/json"
	"log/slog"
	"path"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selectable through cart.guestBucketURL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStore implements repository.GuestCartRepository on a gocloud bucket.
// One JSON array of {variantId, quantity} is kept per device under <prefix>/<deviceID>.json.
type blobStore struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

// Params holds dependencies for the blob guest store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it when the app stops.
func New(params Params) (repository.GuestCartRepository, error) {
	cfg := params.Config.Cart

	bucket, err := blob.OpenBucket(context.Background(), cfg.GuestBucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open guest cart bucket %q", cfg.GuestBucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket, cfg.GuestKeyPrefix, params.Logger), nil
}

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket, prefix string, logger *slog.Logger) repository.GuestCartRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &blobStore{
		bucket: bucket,
		prefix: prefix,
		logger: logger.With(slog.String("component", "guest_cart_store")),
	}
}

func (s *blobStore) key(deviceID uuid.UUID) string {
	return path.Join(s.prefix, deviceID.String()+".json")
}

// Load returns the stored lines. Missing or unreadable data is treated as an empty cart.
func (s *blobStore) Load(ctx context.Context, deviceID uuid.UUID) ([]entity.CartLine, error) {
	data, err := s.bucket.ReadAll(ctx, s.key(deviceID))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return []entity.CartLine{}, nil
		}

		return nil, errors.Wrap(err, "failed to read guest cart")
	}

	var stored []entity.CartLine
	if err := json.Unmarshal(data, &stored); err != nil {
		s.logger.WarnContext(ctx, "Discarding corrupt guest cart",
			slog.String("deviceID", deviceID.String()),
			slog.Any("error", err),
		)

		return []entity.CartLine{}, nil
	}

	lines := make([]entity.CartLine, 0, len(stored))
	for _, line := range stored {
		if line.Quantity <= 0 || line.VariantID == uuid.Nil {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// Save replaces the stored list.
func (s *blobStore) Save(ctx context.Context, deviceID uuid.UUID, lines []entity.CartLine) error {
	if lines == nil {
		lines = []entity.CartLine{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return errors.Wrap(err, "failed to encode guest cart")
	}

	if err := s.bucket.WriteAll(ctx, s.key(deviceID), data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrap(err, "failed to write guest cart")
	}

	return nil
}

// Clear empties the stored list. Clearing an absent cart is not an error.
func (s *blobStore) Clear(ctx context.Context, deviceID uuid.UUID) error {
	if err := s.bucket.Delete(ctx, s.key(deviceID)); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to clear guest cart")
	}

	return nil
}
