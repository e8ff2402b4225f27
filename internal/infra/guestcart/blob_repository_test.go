package guestcart

import (
	"context"
	"encoding/json"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestBucket(t *testing.T) *blob.Bucket {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return bucket
}

func TestBlobRepository_GetMissingReturnsEmptyCart(t *testing.T) {
	repo := NewRepository(newTestBucket(t), "guest-carts/")

	cart, err := repo.Get(context.Background(), "guest-1")

	require.NoError(t, err)
	assert.Equal(t, "guest-1", cart.ID)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.Count())
}

func TestBlobRepository_PutAndGet(t *testing.T) {
	bucket := newTestBucket(t)
	repo := NewRepository(bucket, "guest-carts/")
	ctx := context.Background()
	itemID := uuid.New()

	cart := entity.NewGuestCart("guest-1")
	cart.Lines = cart.Lines.Add(itemID, 2, decimal.NewFromInt(3))
	require.NoError(t, repo.Put(ctx, cart))

	loaded, err := repo.Get(ctx, "guest-1")
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, itemID, loaded.Lines[0].ItemID)
	assert.Equal(t, 2, loaded.Lines[0].Quantity)

	// The stored object carries the derived total next to the lines.
	raw, err := bucket.ReadAll(ctx, "guest-carts/guest-1.json")
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "items")
	assert.JSONEq(t, `"6"`, string(doc["totalAmount"]))
}

func TestBlobRepository_Delete(t *testing.T) {
	repo := NewRepository(newTestBucket(t), "")
	ctx := context.Background()

	cart := entity.NewGuestCart("guest-2")
	cart.Lines = cart.Lines.Add(uuid.New(), 1, decimal.Zero)
	require.NoError(t, repo.Put(ctx, cart))

	require.NoError(t, repo.Delete(ctx, "guest-2"))
	require.NoError(t, repo.Delete(ctx, "guest-2"))

	loaded, err := repo.Get(ctx, "guest-2")
	require.NoError(t, err)
	assert.Empty(t, loaded.Lines)
}

func TestBlobRepository_RejectsUnsafeIDs(t *testing.T) {
	repo := NewRepository(newTestBucket(t), "")

	for _, guestID := range []string{"", "../etc/passwd", "a/b", "with space"} {
		_, err := repo.Get(context.Background(), guestID)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr), guestID)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	}
}
