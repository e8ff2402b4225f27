// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemSortOrders maps listing orders to ORDER BY clauses. id breaks ties so pages are stable.
var itemSortOrders = map[entity.ItemSort]string{
	entity.ItemSortNewest:    "created_at DESC, id",
	entity.ItemSortPriceLow:  "price ASC, id",
	entity.ItemSortPriceHigh: "price DESC, id",
	entity.ItemSortName:      "name ASC, id",
	entity.ItemSortRating:    "rating DESC, id",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// FindByID retrieves an item by its unique ID.
func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return toItemDomain(&itemM), nil
}

// FindByIDs retrieves the existing items among ids in one query.
func (repo *itemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Item, error) {
	items := make(map[uuid.UUID]*entity.Item, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	var itemModels []*model.ItemModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items by IDs")
	}

	for _, itemM := range itemModels {
		items[itemM.ID] = toItemDomain(itemM)
	}

	return items, nil
}

// List returns one page of items matching filter together with the unpaged match count.
func (repo *itemRepository) List(
	ctx context.Context,
	filter entity.ItemFilter,
	sort entity.ItemSort,
	offset, limit int,
) ([]*entity.Item, int64, error) {
	matching := itemFilterScope(filter)

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Scopes(matching).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count items")
	}
	offset = max(offset, 0)
	if int64(offset) >= total {
		return []*entity.Item{}, total, nil
	}

	order, ok := itemSortOrders[sort]
	if !ok {
		order = itemSortOrders[entity.ItemSortNewest]
	}

	var itemModels []*model.ItemModel
	if err := repo.db.WithContext(ctx).
		Scopes(matching).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&itemModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return items, total, nil
}

// DistinctCategories returns the categories that have at least one item.
func (repo *itemRepository) DistinctCategories(ctx context.Context) ([]entity.Category, error) {
	var names []string
	if err := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Distinct("category").
		Order("category").
		Pluck("category", &names).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]entity.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, entity.Category(name))
	}

	return categories, nil
}

// Create persists a new item.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("item violates catalog constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update overwrites every mutable column of an existing item.
func (repo *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ?", item.ID).
		Select("name", "description", "price", "category", "image", "stock", "rating", "reviews", "updated_at").
		Updates(itemM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("item violates catalog constraints")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// Delete removes an item. Cart lines referencing it are left in place.
func (repo *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

func itemFilterScope(filter entity.ItemFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category.String())
		}
		if filter.MinPrice != nil {
			db = db.Where("price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			db = db.Where("price <= ?", *filter.MaxPrice)
		}
		if search := strings.TrimSpace(filter.Search); search != "" {
			pattern := "%" + likeEscaper.Replace(search) + "%"
			db = db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
		}

		return db
	}
}

// --- Mapper Functions ---

func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    entity.Category(data.Category),
		Image:       data.Image,
		Stock:       data.Stock,
		Rating:      data.Rating,
		Reviews:     data.Reviews,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	return &model.ItemModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category.String(),
		Image:       data.Image,
		Stock:       data.Stock,
		Rating:      data.Rating,
		Reviews:     data.Reviews,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
