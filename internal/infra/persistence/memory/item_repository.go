package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// itemRepository implements repository.ItemRepository. With a nil tx every write commits on its own.
type itemRepository struct {
	store *Store
	tx    *txState
}

// NewItemRepository creates an auto-committing item repository.
func NewItemRepository(store *Store) repository.ItemRepository {
	return &itemRepository{store: store}
}

func (repo *itemRepository) write(fn func(tx *txState) error) error {
	if repo.tx != nil {
		return fn(repo.tx)
	}

	return repo.store.autoCommit(fn)
}

func (repo *itemRepository) lookup(tx *txState, id uuid.UUID) (*entity.Item, bool) {
	if tx != nil {
		if _, deleted := tx.deletedItems[id]; deleted {
			return nil, false
		}
		if item, ok := tx.items[id]; ok {
			return item, true
		}
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()
	item, ok := repo.store.items[id]

	return item, ok
}

// snapshot returns copies of every visible item in no particular order.
func (repo *itemRepository) snapshot() []*entity.Item {
	repo.store.mu.RLock()
	items := make([]*entity.Item, 0, len(repo.store.items))
	for id, item := range repo.store.items {
		if repo.tx != nil {
			if _, deleted := repo.tx.deletedItems[id]; deleted {
				continue
			}
			if _, staged := repo.tx.items[id]; staged {
				continue
			}
		}
		items = append(items, copyItem(item))
	}
	repo.store.mu.RUnlock()

	if repo.tx != nil {
		for _, item := range repo.tx.items {
			items = append(items, copyItem(item))
		}
	}

	return items
}

func (repo *itemRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Item, error) {
	item, ok := repo.lookup(repo.tx, id)
	if !ok {
		return nil, repository.ErrItemNotFound
	}

	return copyItem(item), nil
}

func (repo *itemRepository) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Item, error) {
	items := make(map[uuid.UUID]*entity.Item, len(ids))
	for _, id := range ids {
		if item, ok := repo.lookup(repo.tx, id); ok {
			items[id] = copyItem(item)
		}
	}

	return items, nil
}

func (repo *itemRepository) List(
	_ context.Context,
	filter entity.ItemFilter,
	sort entity.ItemSort,
	offset, limit int,
) ([]*entity.Item, int64, error) {
	matched := slices.DeleteFunc(repo.snapshot(), func(item *entity.Item) bool {
		return !matchesFilter(item, filter)
	})
	slices.SortFunc(matched, itemComparator(sort))

	total := int64(len(matched))
	offset = max(offset, 0)
	if offset >= len(matched) {
		return []*entity.Item{}, total, nil
	}
	end := len(matched)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}

	return matched[offset:end], total, nil
}

func (repo *itemRepository) DistinctCategories(_ context.Context) ([]entity.Category, error) {
	seen := make(map[entity.Category]struct{})
	for _, item := range repo.snapshot() {
		seen[item.Category] = struct{}{}
	}

	categories := make([]entity.Category, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	return categories, nil
}

func (repo *itemRepository) Create(_ context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}

	return repo.write(func(tx *txState) error {
		delete(tx.deletedItems, item.ID)
		tx.items[item.ID] = copyItem(item)

		return nil
	})
}

func (repo *itemRepository) Update(_ context.Context, item *entity.Item) error {
	return repo.write(func(tx *txState) error {
		existing, ok := repo.lookup(tx, item.ID)
		if !ok {
			return repository.ErrItemNotFound
		}

		updated := copyItem(item)
		updated.CreatedAt = existing.CreatedAt
		tx.items[item.ID] = updated

		return nil
	})
}

func (repo *itemRepository) Delete(_ context.Context, id uuid.UUID) error {
	return repo.write(func(tx *txState) error {
		if _, ok := repo.lookup(tx, id); !ok {
			return repository.ErrItemNotFound
		}

		delete(tx.items, id)
		tx.deletedItems[id] = struct{}{}

		return nil
	})
}

func matchesFilter(item *entity.Item, filter entity.ItemFilter) bool {
	if filter.Category != "" && item.Category != filter.Category {
		return false
	}
	if filter.MinPrice != nil && item.Price.LessThan(*filter.MinPrice) {
		return false
	}
	if filter.MaxPrice != nil && item.Price.GreaterThan(*filter.MaxPrice) {
		return false
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		return strings.Contains(strings.ToLower(item.Name), search) ||
			strings.Contains(strings.ToLower(item.Description), search)
	}

	return true
}

func itemComparator(sort entity.ItemSort) func(a, b *entity.Item) int {
	var primary func(a, b *entity.Item) int
	switch sort {
	case entity.ItemSortPriceLow:
		primary = func(a, b *entity.Item) int { return a.Price.Cmp(b.Price) }
	case entity.ItemSortPriceHigh:
		primary = func(a, b *entity.Item) int { return b.Price.Cmp(a.Price) }
	case entity.ItemSortName:
		primary = func(a, b *entity.Item) int { return cmp.Compare(a.Name, b.Name) }
	case entity.ItemSortRating:
		primary = func(a, b *entity.Item) int { return cmp.Compare(b.Rating, a.Rating) }
	default:
		primary = func(a, b *entity.Item) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}

	return func(a, b *entity.Item) int {
		if c := primary(a, b); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	}
}
