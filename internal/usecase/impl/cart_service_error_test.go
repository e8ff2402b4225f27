package impl

import (
	"context"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem_PublishesEvent(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	fx := createTestCartService(t, withPublisher(publisher))
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	userID := uuid.New()
	item := fx.addCatalogItem(t, "Kettle", "20", 5)

	publisher.EXPECT().
		PublishCartEvent(ctx, mock.AnythingOfType("*service.CartEvent")).
		Run(func(_ context.Context, event *service.CartEvent) {
			assert.Equal(t, service.CartEventItemAdded, event.Type)
			assert.Equal(t, "req-42", event.RequestID)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, item.ID.String(), event.ItemID)
			assert.Equal(t, 2, event.Quantity)
			assert.Equal(t, 2, event.CartCount)
			assert.Equal(t, "40", event.TotalAmount)
			assert.NotEmpty(t, event.EventID)
		}).
		Return(nil).
		Once()

	_, err := fx.service.AddItem(ctx, userID, item.ID, 2)
	require.NoError(t, err)
}

func TestCartService_PublishFailureDoesNotFailMutation(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	fx := createTestCartService(t, withPublisher(publisher))
	ctx := context.Background()
	item := fx.addCatalogItem(t, "Toaster", "35", 5)

	publisher.EXPECT().PublishCartEvent(ctx, mock.Anything).Return(errors.New("broker unavailable"))

	view, err := fx.service.AddItem(ctx, uuid.New(), item.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
}

func TestCartService_NoEventWithoutChange(t *testing.T) {
	// The mock fails the test on any unexpected PublishCartEvent call.
	publisher := mockSvc.NewMockEventPublisher(t)
	fx := createTestCartService(t, withPublisher(publisher))
	ctx := context.Background()
	userID := uuid.New()

	_, err := fx.service.RemoveItem(ctx, userID, uuid.New())
	require.NoError(t, err)
	_, err = fx.service.Clear(ctx, userID)
	require.NoError(t, err)
}

func newMockedCartService(t *testing.T) (CartServiceParams, *mockRepo.MockTransactionManager, *mockRepo.MockCartRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)

	return CartServiceParams{
		TxManager:     txManager,
		CartRepo:      cartRepo,
		ItemRepo:      mockRepo.NewMockItemRepository(t),
		GuestCartRepo: mockRepo.NewMockGuestCartRepository(t),
		Config:        &config.Config{},
		Logger:        newDiscardLogger(),
	}, txManager, cartRepo
}

func TestCartService_TransactionFailureIsWrapped(t *testing.T) {
	params, txManager, _ := newMockedCartService(t)
	srv := NewCartService(params)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	txManager.EXPECT().Execute(ctx, mock.Anything).Return(dbErr)

	view, err := srv.AddItem(ctx, uuid.New(), uuid.New(), 1)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, dbErr)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestCartService_SaveFailureAbortsAdd(t *testing.T) {
	params, txManager, _ := newMockedCartService(t)
	srv := NewCartService(params)
	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	saveErr := errors.New("serialization failure")

	factory := mockRepo.NewMockRepositoryFactory(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().NewItemRepository().Return(itemRepo)
	factory.EXPECT().NewCartRepository().Return(cartRepo)

	itemRepo.EXPECT().FindByID(ctx, itemID).Return(newTestCatalogItem(itemID, 10), nil)
	cartRepo.EXPECT().CreateIfNotExists(ctx, userID).Return(nil)
	cartRepo.EXPECT().FindByUserIDForUpdate(ctx, userID).Return(newEmptyTestCart(userID), nil)
	cartRepo.EXPECT().Save(ctx, mock.Anything).Return(saveErr)

	txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := srv.AddItem(ctx, userID, itemID, 1)
	assert.ErrorIs(t, err, saveErr)
}

func TestCartService_Count_StoreFailure(t *testing.T) {
	params, _, cartRepo := newMockedCartService(t)
	srv := NewCartService(params)
	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, context.DeadlineExceeded)

	count, err := srv.Count(ctx, userID)
	assert.Zero(t, count)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
