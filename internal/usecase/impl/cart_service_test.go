package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCartService_GetCart_CreatesLazily(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	count, err := fx.service.Count(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, count)

	view, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, view.UserID)
	assert.NotEqual(t, uuid.Nil, view.ID)
	assert.Empty(t, view.Items)
	assert.True(t, view.TotalAmount.IsZero())

	again, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, view.ID, again.ID)
}

func TestCartService_AddItem_SameItemAccumulates(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	item := fx.addCatalogItem(t, "Mug", "7.50", 10)

	_, err := fx.service.AddItem(ctx, userID, item.ID, 2)
	require.NoError(t, err)
	view, err := fx.service.AddItem(ctx, userID, item.ID, 3)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.Equal(t, entity.LineResolved, view.Items[0].Status)
	assert.True(t, decimal.RequireFromString("37.5").Equal(view.TotalAmount))
	requireTotalInvariant(t, view)
}

func TestCartService_AddItem_RecapturesPrice(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	item := fx.addCatalogItem(t, "Lamp", "10", 10)

	_, err := fx.service.AddItem(ctx, userID, item.ID, 1)
	require.NoError(t, err)

	item.Price = decimal.NewFromInt(12)
	require.NoError(t, fx.itemRepo.Update(ctx, item))

	view, err := fx.service.AddItem(ctx, userID, item.ID, 1)
	require.NoError(t, err)

	line := lineFor(view, item.ID)
	require.NotNil(t, line)
	assert.True(t, decimal.NewFromInt(12).Equal(line.Price))
	assert.True(t, decimal.NewFromInt(24).Equal(view.TotalAmount))
}

func TestCartService_AddItem_InsufficientStock(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	item := fx.addCatalogItem(t, "Rare Vinyl", "30", 1)

	view, err := fx.service.AddItem(ctx, userID, item.ID, 5)
	assert.Nil(t, view)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "only 1")

	count, err := fx.service.Count(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCartService_AddItem_ChecksRequestedQuantityOnly(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	item := fx.addCatalogItem(t, "Pen", "1", 3)

	_, err := fx.service.AddItem(ctx, userID, item.ID, 2)
	require.NoError(t, err)

	// Each request is checked on its own, so the line may exceed stock.
	view, err := fx.service.AddItem(ctx, userID, item.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, lineFor(view, item.ID).Quantity)
}

func TestCartService_AddItem_Rejects(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.AddItem(ctx, uuid.New(), uuid.New(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	_, err = fx.service.AddItem(ctx, uuid.New(), uuid.New(), 1)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	item := fx.addCatalogItem(t, "Chair", "45", 3)

	_, err := fx.service.AddItem(ctx, userID, item.ID, 2)
	require.NoError(t, err)

	view, err := fx.service.UpdateQuantity(ctx, userID, item.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, lineFor(view, item.ID).Quantity)
	requireTotalInvariant(t, view)

	_, err = fx.service.UpdateQuantity(ctx, userID, item.ID, 5)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())

	unchanged, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, lineFor(unchanged, item.ID).Quantity)
}

func TestCartService_UpdateQuantity_AsymmetricNotFound(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	item := fx.addCatalogItem(t, "Desk", "120", 5)
	other := fx.addCatalogItem(t, "Shelf", "60", 5)

	_, err := fx.service.UpdateQuantity(ctx, userID, item.ID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)

	_, err = fx.service.AddItem(ctx, userID, item.ID, 1)
	require.NoError(t, err)

	_, err = fx.service.UpdateQuantity(ctx, userID, other.ID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)

	_, err = fx.service.UpdateQuantity(ctx, userID, item.ID, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	keep := fx.addCatalogItem(t, "Sock", "3", 50)
	drop := fx.addCatalogItem(t, "Hat", "15", 50)

	_, err := fx.service.AddItem(ctx, userID, keep.ID, 2)
	require.NoError(t, err)
	before, err := fx.service.AddItem(ctx, userID, drop.ID, 1)
	require.NoError(t, err)

	noop, err := fx.service.RemoveItem(ctx, userID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, before.Count, noop.Count)
	assert.True(t, before.TotalAmount.Equal(noop.TotalAmount))

	view, err := fx.service.RemoveItem(ctx, userID, drop.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, keep.ID, view.Items[0].ItemID)
	requireTotalInvariant(t, view)
}

func TestCartService_RemoveAndClear_MissingCartDegrades(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	view, err := fx.service.RemoveItem(ctx, userID, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	view, err = fx.service.Clear(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.TotalAmount.IsZero())

	// Neither call may create the cart.
	_, err = fx.cartRepo.FindByUserID(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestCartService_Clear(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	item := fx.addCatalogItem(t, "Book", "12", 10)

	_, err := fx.service.AddItem(ctx, userID, item.ID, 4)
	require.NoError(t, err)

	view, err := fx.service.Clear(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.TotalAmount.IsZero())

	count, err := fx.service.Count(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCartService_DeletedItemIsStale(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	item := fx.addCatalogItem(t, "Discontinued", "9.99", 10)

	_, err := fx.service.AddItem(ctx, userID, item.ID, 2)
	require.NoError(t, err)
	require.NoError(t, fx.itemRepo.Delete(ctx, item.ID))

	view, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)

	line := lineFor(view, item.ID)
	require.NotNil(t, line)
	assert.Equal(t, entity.LineStale, line.Status)
	assert.Nil(t, line.Item)
	assert.Equal(t, 2, line.Quantity)
	requireTotalInvariant(t, view)
}

func TestCartService_ConcurrentAddsAreNotLost(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	item := fx.addCatalogItem(t, "Sticker", "0.50", 1000)

	const workers = 25
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			_, err := fx.service.AddItem(ctx, userID, item.ID, 1)

			return err
		})
	}
	require.NoError(t, g.Wait())

	view, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, workers, view.Items[0].Quantity)
	requireTotalInvariant(t, view)
}
