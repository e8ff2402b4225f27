// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrItemNotFound is returned when a catalog item does not exist.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository defines catalog persistence. The cart side only uses the read methods.
type ItemRepository interface {
	// FindByID retrieves a single item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindByIDs retrieves every existing item among ids. Missing ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Item, error)

	// List returns a filtered, sorted page of items and the total match count.
	List(ctx context.Context, filter entity.ItemFilter, sort entity.ItemSort, offset, limit int) ([]*entity.Item, int64, error)

	// DistinctCategories returns the categories currently in use.
	DistinctCategories(ctx context.Context) ([]entity.Category, error)

	// Create persists a new item.
	Create(ctx context.Context, item *entity.Item) error

	// Update overwrites an existing item.
	Update(ctx context.Context, item *entity.Item) error

	// Delete removes an item by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
