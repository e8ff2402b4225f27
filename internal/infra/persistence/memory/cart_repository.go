package memory

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// cartRepository implements repository.CartRepository. With a nil tx every write commits on its own.
type cartRepository struct {
	store *Store
	tx    *txState
}

// NewCartRepository creates an auto-committing cart repository.
func NewCartRepository(store *Store) repository.CartRepository {
	return &cartRepository{store: store}
}

func (repo *cartRepository) write(fn func(tx *txState) error) error {
	if repo.tx != nil {
		return fn(repo.tx)
	}

	return repo.store.autoCommit(fn)
}

func (repo *cartRepository) lookup(tx *txState, userID uuid.UUID) (*entity.Cart, bool) {
	if tx != nil {
		if cart, ok := tx.carts[userID]; ok {
			return cart, true
		}
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()
	cart, ok := repo.store.carts[userID]

	return cart, ok
}

func (repo *cartRepository) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, ok := repo.lookup(repo.tx, userID)
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	return copyCart(cart), nil
}

// FindByUserIDForUpdate needs no row lock here: the transaction already holds the store-wide lock.
func (repo *cartRepository) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.FindByUserID(ctx, userID)
}

func (repo *cartRepository) CreateIfNotExists(_ context.Context, userID uuid.UUID) error {
	return repo.write(func(tx *txState) error {
		if _, ok := repo.lookup(tx, userID); ok {
			return nil
		}

		now := time.Now()
		cart := entity.NewEmptyCart(userID)
		cart.ID = uuid.New()
		cart.CreatedAt = now
		cart.UpdatedAt = now
		tx.carts[userID] = cart

		return nil
	})
}

func (repo *cartRepository) Save(_ context.Context, cart *entity.Cart) error {
	now := time.Now()

	err := repo.write(func(tx *txState) error {
		existing, ok := repo.lookup(tx, cart.UserID)
		if !ok {
			return repository.ErrCartNotFound
		}

		saved := copyCart(cart)
		saved.ID = existing.ID
		saved.CreatedAt = existing.CreatedAt
		saved.UpdatedAt = now
		tx.carts[cart.UserID] = saved

		return nil
	})
	if err != nil {
		return err
	}

	cart.UpdatedAt = now

	return nil
}
