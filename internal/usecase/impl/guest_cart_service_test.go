package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/guestcart"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/sync/errgroup"
)

func createTestGuestCartService(t *testing.T) usecase.GuestCartUsecase {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewGuestCartService(guestcart.NewRepository(bucket, "guest-carts/"), newDiscardLogger())
}

func TestGuestCartService_Lifecycle(t *testing.T) {
	srv := createTestGuestCartService(t)
	ctx := context.Background()
	itemA, itemB := uuid.New(), uuid.New()

	_, err := srv.AddItem(ctx, "guest-1", itemA, 2)
	require.NoError(t, err)
	cart, err := srv.AddItem(ctx, "guest-1", itemA, 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.True(t, cart.TotalAmount().IsZero())

	_, err = srv.AddItem(ctx, "guest-1", itemB, 4)
	require.NoError(t, err)

	count, err := srv.Count(ctx, "guest-1")
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	cart, err = srv.UpdateQuantity(ctx, "guest-1", itemB, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Count())

	cart, err = srv.RemoveItem(ctx, "guest-1", itemA)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, itemB, cart.Lines[0].ItemID)

	require.NoError(t, srv.Clear(ctx, "guest-1"))
	count, err = srv.Count(ctx, "guest-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGuestCartService_AbsentLinesAreLeftAlone(t *testing.T) {
	guestRepo := mockRepo.NewMockGuestCartRepository(t)
	srv := NewGuestCartService(guestRepo, newDiscardLogger())
	ctx := context.Background()

	stored := createTestGuestCart("guest-2", uuid.New(), 2)
	guestRepo.EXPECT().Lock(ctx, "guest-2").Return(func() {}, nil)
	guestRepo.EXPECT().Get(ctx, "guest-2").Return(stored, nil)

	// No Put expectation: neither call may write.
	cart, err := srv.UpdateQuantity(ctx, "guest-2", uuid.New(), 5)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Count())

	cart, err = srv.RemoveItem(ctx, "guest-2", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Count())
}

func TestGuestCartService_Rejects(t *testing.T) {
	srv := createTestGuestCartService(t)
	ctx := context.Background()

	_, err := srv.AddItem(ctx, "guest-3", uuid.New(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	for _, guestID := range []string{"", "bad/id", "has space"} {
		_, err := srv.GetCart(ctx, guestID)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr, guestID)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	}
}

func TestGuestCartService_StoreFailure(t *testing.T) {
	guestRepo := mockRepo.NewMockGuestCartRepository(t)
	srv := NewGuestCartService(guestRepo, newDiscardLogger())
	ctx := context.Background()
	storeErr := errors.New("bucket unavailable")

	guestRepo.EXPECT().Lock(ctx, "guest-4").Return(func() {}, nil)
	guestRepo.EXPECT().Get(ctx, "guest-4").Return(createTestGuestCart("guest-4", uuid.New(), 1), nil)
	guestRepo.EXPECT().Put(ctx, mock.Anything).Return(storeErr)

	_, err := srv.AddItem(ctx, "guest-4", uuid.New(), 1)
	assert.ErrorIs(t, err, storeErr)
}

func TestGuestCartService_ConcurrentAddsAreNotLost(t *testing.T) {
	srv := createTestGuestCartService(t)
	ctx := context.Background()
	itemID := uuid.New()

	const workers = 50
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			_, err := srv.AddItem(ctx, "guest-busy", itemID, 1)

			return err
		})
	}
	require.NoError(t, g.Wait())

	count, err := srv.Count(ctx, "guest-busy")
	require.NoError(t, err)
	assert.Equal(t, workers, count)
}

func TestGuestCartService_LockFailure(t *testing.T) {
	guestRepo := mockRepo.NewMockGuestCartRepository(t)
	srv := NewGuestCartService(guestRepo, newDiscardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	guestRepo.EXPECT().Lock(ctx, "guest-5").Return(nil, context.Canceled)

	_, err := srv.AddItem(ctx, "guest-5", uuid.New(), 1)
	assert.ErrorIs(t, err, context.Canceled)

	err = srv.Clear(ctx, "guest-5")
	assert.ErrorIs(t, err, context.Canceled)
}
