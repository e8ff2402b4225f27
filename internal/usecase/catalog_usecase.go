package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListItemsQuery carries the catalog listing parameters.
type ListItemsQuery struct {
	Filter entity.ItemFilter
	Sort   entity.ItemSort
	Page   int
	Limit  int
}

// CreateItemInput holds the fields required to create a catalog item.
type CreateItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    entity.Category
	Image       string
	Stock       int
}

// UpdateItemInput holds a partial item update; nil fields are left untouched.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *entity.Category
	Image       *string
	Stock       *int
	Rating      *float64
	Reviews     *int
}

// CatalogUsecase defines the catalog use cases.
type CatalogUsecase interface {
	// ListItems returns one page of items matching the query.
	ListItems(ctx context.Context, query ListItemsQuery) (*entity.ItemPage, error)

	// GetItem retrieves a single item.
	GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// ListCategories returns the categories currently in use.
	ListCategories(ctx context.Context) ([]entity.Category, error)

	// CreateItem adds a new item to the catalog.
	CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error)

	// UpdateItem applies a partial update to an item.
	UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error)

	// DeleteItem removes an item. Carts referencing it keep their lines, which then resolve as stale.
	DeleteItem(ctx context.Context, id uuid.UUID) error

	// ItemQRCode renders a PNG QR code for the item's share URL.
	ItemQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
