// Package guestcart stores guest carts as JSON objects in a gocloud blob bucket.
package guestcart

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const contentTypeJSON = "application/json"

// guestIDPattern keeps ids usable as object keys on every blob driver.
var guestIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// document is the stored JSON schema of one guest cart.
type document struct {
	Items       entity.CartLines `json:"items"`
	TotalAmount decimal.Decimal  `json:"totalAmount"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type blobRepository struct {
	bucket *blob.Bucket
	prefix string
	locks  *keyLock
}

// NewRepository wraps an open bucket. Keys are prefix + guest id.
func NewRepository(bucket *blob.Bucket, prefix string) repository.GuestCartRepository {
	return &blobRepository{
		bucket: bucket,
		prefix: prefix,
		locks:  newKeyLock(),
	}
}

func (repo *blobRepository) key(guestID string) (string, error) {
	if !guestIDPattern.MatchString(guestID) {
		return "", domainerrors.ErrValidationFailed.WithDetails("invalid guest cart id")
	}

	return repo.prefix + guestID + ".json", nil
}

// Get returns the stored cart, or an empty one when nothing is stored under guestID.
func (repo *blobRepository) Get(ctx context.Context, guestID string) (*entity.GuestCart, error) {
	key, err := repo.key(guestID)
	if err != nil {
		return nil, err
	}

	data, err := repo.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return entity.NewGuestCart(guestID), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read guest cart")
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode guest cart %s", guestID)
	}

	cart := entity.NewGuestCart(guestID)
	if doc.Items != nil {
		cart.Lines = doc.Items
	}
	cart.UpdatedAt = doc.UpdatedAt

	return cart, nil
}

// Put overwrites the stored cart with its lines and recomputed total.
func (repo *blobRepository) Put(ctx context.Context, cart *entity.GuestCart) error {
	key, err := repo.key(cart.ID)
	if err != nil {
		return err
	}

	cart.UpdatedAt = time.Now().UTC()
	lines := cart.Lines
	if lines == nil {
		lines = entity.CartLines{}
	}

	data, err := json.Marshal(document{
		Items:       lines,
		TotalAmount: cart.TotalAmount(),
		UpdatedAt:   cart.UpdatedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := repo.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentTypeJSON}); err != nil {
		return errors.Wrap(err, "failed to write guest cart")
	}

	return nil
}

// Delete removes the stored cart. Deleting a missing cart is not an error.
func (repo *blobRepository) Delete(ctx context.Context, guestID string) error {
	key, err := repo.key(guestID)
	if err != nil {
		return err
	}

	if err := repo.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete guest cart")
	}

	return nil
}

// Lock holds guestID within this process. Replicas sharing a bucket are not serialized.
func (repo *blobRepository) Lock(ctx context.Context, guestID string) (func(), error) {
	if _, err := repo.key(guestID); err != nil {
		return nil, err
	}

	return repo.locks.lock(ctx, guestID)
}

// Params holds dependencies for the blob-backed repository, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobRepository opens the configured bucket and closes it on shutdown.
func NewBlobRepository(params Params) (repository.GuestCartRepository, error) {
	cfg := params.Config.GuestCart
	if cfg == nil {
		return nil, errors.New("guestCart config is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open guest cart bucket %q", cfg.BucketURL)
	}

	params.Logger.Info("Guest cart store ready",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("key_prefix", cfg.KeyPrefix),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewRepository(bucket, cfg.KeyPrefix), nil
}
