package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackPageSize    = 10
	fallbackMaxPageSize = 100
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	itemRepo        repository.ItemRepository
	qrCodeService   service.QRCodeService
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ItemRepo      repository.ItemRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	defaultPageSize := fallbackPageSize
	maxPageSize := fallbackMaxPageSize
	if params.Config != nil {
		if params.Config.Catalog.DefaultPageSize > 0 {
			defaultPageSize = params.Config.Catalog.DefaultPageSize
		}
		if params.Config.Catalog.MaxPageSize > 0 {
			maxPageSize = params.Config.Catalog.MaxPageSize
		}
	}

	return &catalogService{
		itemRepo:        params.ItemRepo,
		qrCodeService:   params.QRCodeService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListItems returns one page of matching items. Out-of-range pages and limits are clamped.
func (srv *catalogService) ListItems(ctx context.Context, query usecase.ListItemsQuery) (*entity.ItemPage, error) {
	if query.Filter.Category != "" && !query.Filter.Category.IsValid() {
		return nil, domainerrors.ErrInvalidCategory
	}

	limit := query.Limit
	if limit < 1 {
		limit = srv.defaultPageSize
	}
	limit = min(limit, srv.maxPageSize)
	// Past math.MaxInt/limit the offset would overflow; such pages are empty anyway.
	page := min(max(query.Page, 1), math.MaxInt/limit)

	items, total, err := srv.itemRepo.List(ctx, query.Filter, query.Sort, (page-1)*limit, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list items", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list items")
	}

	return &entity.ItemPage{
		Items:       items,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		CurrentPage: page,
		Total:       total,
	}, nil
}

func (srv *catalogService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return findCatalogItem(ctx, srv.itemRepo, id)
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := srv.itemRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) CreateItem(ctx context.Context, input *usecase.CreateItemInput) (*entity.Item, error) {
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrInvalidCategory
	}

	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Stock:       input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if item.Image == "" {
		item.Image = entity.DefaultItemImage
	}

	if err := srv.itemRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	srv.log(ctx).Info("Item created", slog.Any("itemID", item.ID), slog.String("name", item.Name))

	return item, nil
}

// UpdateItem applies the non-nil fields of input. Existing cart lines keep the price they captured.
func (srv *catalogService) UpdateItem(ctx context.Context, id uuid.UUID, input *usecase.UpdateItemInput) (*entity.Item, error) {
	item, err := findCatalogItem(ctx, srv.itemRepo, id)
	if err != nil {
		return nil, err
	}

	applyItemUpdate(item, input)
	if !item.Category.IsValid() {
		return nil, domainerrors.ErrInvalidCategory
	}
	item.UpdatedAt = time.Now()

	if err := srv.itemRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update item")
	}

	return item, nil
}

func (srv *catalogService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := srv.itemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domainerrors.ErrItemNotFound
		}

		return errors.Wrap(err, "failed to delete item")
	}

	srv.log(ctx).Info("Item deleted", slog.Any("itemID", id))

	return nil
}

func (srv *catalogService) ItemQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	item, err := findCatalogItem(ctx, srv.itemRepo, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateItemQR(item.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate item QR code")
	}

	return png, nil
}

func applyItemUpdate(item *entity.Item, input *usecase.UpdateItemInput) {
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Image != nil {
		item.Image = *input.Image
	}
	if input.Stock != nil {
		item.Stock = *input.Stock
	}
	if input.Rating != nil {
		item.Rating = *input.Rating
	}
	if input.Reviews != nil {
		item.Reviews = *input.Reviews
	}
}
