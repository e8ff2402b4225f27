package impl

import (
	"context"
	"math"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogTestFixture struct {
	service   usecase.CatalogUsecase
	itemRepo  *mockRepo.MockItemRepository
	qrService *mockSvc.MockQRCodeService
}

func createTestCatalogService(t *testing.T) *catalogTestFixture {
	itemRepo := mockRepo.NewMockItemRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	cfg := &config.Config{}
	cfg.Catalog.DefaultPageSize = 10
	cfg.Catalog.MaxPageSize = 50

	return &catalogTestFixture{
		service: NewCatalogService(CatalogServiceParams{
			ItemRepo:      itemRepo,
			QRCodeService: qrService,
			Config:        cfg,
			Logger:        newDiscardLogger(),
		}),
		itemRepo:  itemRepo,
		qrService: qrService,
	}
}

func TestCatalogService_ListItems_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		wantOffset int
		wantLimit  int
		wantPage   int
		wantPages  int
	}{
		{"defaults", 0, 0, 25, 0, 10, 1, 3},
		{"second page", 2, 5, 11, 5, 5, 2, 3},
		{"limit capped", 1, 500, 120, 0, 50, 1, 3},
		{"empty catalog", 1, 10, 0, 0, 10, 1, 0},
		{"page past offset range", math.MaxInt, 10, 25, (math.MaxInt/10 - 1) * 10, 10, math.MaxInt / 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()
			filter := entity.ItemFilter{Search: "lamp"}

			fx.itemRepo.EXPECT().
				List(ctx, filter, entity.ItemSortName, tt.wantOffset, tt.wantLimit).
				Return([]*entity.Item{}, tt.total, nil)

			page, err := fx.service.ListItems(ctx, usecase.ListItemsQuery{
				Filter: filter,
				Sort:   entity.ItemSortName,
				Page:   tt.page,
				Limit:  tt.limit,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.CurrentPage)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.total, page.Total)
		})
	}
}

func TestCatalogService_ListItems_HugePageIsEmpty(t *testing.T) {
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	ctx := context.Background()
	require.NoError(t, items.Create(ctx, &entity.Item{
		ID:       uuid.New(),
		Name:     "Desk Lamp",
		Price:    decimal.RequireFromString("24.50"),
		Category: entity.CategoryHomeGarden,
		Image:    entity.DefaultItemImage,
		Stock:    3,
	}))

	cfg := &config.Config{}
	cfg.Catalog.DefaultPageSize = 10
	cfg.Catalog.MaxPageSize = 50
	service := NewCatalogService(CatalogServiceParams{
		ItemRepo:      items,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})

	for _, limit := range []int{0, 1, 7, 50} {
		page, err := service.ListItems(ctx, usecase.ListItemsQuery{Page: math.MaxInt, Limit: limit})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(1), page.Total)
		assert.Equal(t, 1, page.TotalPages)
	}
}

func TestCatalogService_ListItems_InvalidCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.ListItems(context.Background(), usecase.ListItemsQuery{
		Filter: entity.ItemFilter{Category: "Food"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCategory)
}

func TestCatalogService_CreateItem_DefaultsImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).Return(nil)

	item, err := fx.service.CreateItem(ctx, &usecase.CreateItemInput{
		Name:        "Desk Lamp",
		Description: "Warm light",
		Price:       decimal.RequireFromString("24.99"),
		Category:    entity.CategoryHomeGarden,
		Stock:       3,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, entity.DefaultItemImage, item.Image)
	assert.Zero(t, item.Rating)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestCatalogService_CreateItem_InvalidCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateItem(context.Background(), &usecase.CreateItemInput{Name: "x", Category: "Food"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCategory)
}

func TestCatalogService_UpdateItem_Partial(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	itemID := uuid.New()
	existing := &entity.Item{
		ID:       itemID,
		Name:     "Old Name",
		Price:    decimal.NewFromInt(10),
		Category: entity.CategoryBooks,
		Stock:    1,
	}
	stock := 8

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(existing, nil)
	fx.itemRepo.EXPECT().Update(ctx, existing).Return(nil)

	item, err := fx.service.UpdateItem(ctx, itemID, &usecase.UpdateItemInput{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, "Old Name", item.Name)
	assert.Equal(t, 8, item.Stock)
	assert.True(t, decimal.NewFromInt(10).Equal(item.Price))
}

func TestCatalogService_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	itemID := uuid.New()

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrItemNotFound)
	fx.itemRepo.EXPECT().Delete(ctx, itemID).Return(repository.ErrItemNotFound)

	_, err := fx.service.GetItem(ctx, itemID)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)

	_, err = fx.service.ItemQRCode(ctx, itemID)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)

	err = fx.service.DeleteItem(ctx, itemID)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestCatalogService_ItemQRCode(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	itemID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.itemRepo.EXPECT().FindByID(ctx, itemID).Return(&entity.Item{ID: itemID}, nil)
	fx.qrService.EXPECT().GenerateItemQR(itemID).Return(png, nil)

	got, err := fx.service.ItemQRCode(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
