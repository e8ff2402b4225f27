// Package memory is an in-process persistence driver for local runs and tests.
// Transactions are serialized store-wide and their writes are staged until commit.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/seed"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Store holds every cart and item. Values are deep-copied in and out so callers
// never share memory with the store.
type Store struct {
	// txMu serializes writers: every transaction and every auto-committed write.
	txMu sync.Mutex

	mu    sync.RWMutex
	carts map[uuid.UUID]*entity.Cart
	items map[uuid.UUID]*entity.Item
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		carts: make(map[uuid.UUID]*entity.Cart),
		items: make(map[uuid.UUID]*entity.Item),
	}
}

// txState is the staged write set of one transaction.
type txState struct {
	carts        map[uuid.UUID]*entity.Cart
	items        map[uuid.UUID]*entity.Item
	deletedItems map[uuid.UUID]struct{}
}

func newTxState() *txState {
	return &txState{
		carts:        make(map[uuid.UUID]*entity.Cart),
		items:        make(map[uuid.UUID]*entity.Item),
		deletedItems: make(map[uuid.UUID]struct{}),
	}
}

// transactionManager implements repository.TransactionManager on top of Store.
type transactionManager struct {
	store *Store
}

// repositoryFactory hands out repositories that read through and write into one txState.
type repositoryFactory struct {
	store *Store
	tx    *txState
}

func (f *repositoryFactory) NewCartRepository() repository.CartRepository {
	return &cartRepository{store: f.store, tx: f.tx}
}

func (f *repositoryFactory) NewItemRepository() repository.ItemRepository {
	return &itemRepository{store: f.store, tx: f.tx}
}

// NewTransactionManager creates a transaction manager for store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn while holding the store-wide transaction lock. Staged writes are applied
// only when fn returns nil; on error or panic they are discarded.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	tx := newTxState()
	if err := fn(&repositoryFactory{store: tm.store, tx: tx}); err != nil {
		return err
	}

	// Abandon the write set if the caller gave up while we held the lock, as a database would.
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.commit(tx)

	return nil
}

func (s *Store) commit(tx *txState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, cart := range tx.carts {
		s.carts[userID] = cart
	}
	for id := range tx.deletedItems {
		delete(s.items, id)
	}
	for id, item := range tx.items {
		s.items[id] = item
	}
}

// autoCommit runs a single write as its own transaction.
func (s *Store) autoCommit(write func(tx *txState) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	tx := newTxState()
	if err := write(tx); err != nil {
		return err
	}
	s.commit(tx)

	return nil
}

func copyCart(cart *entity.Cart) *entity.Cart {
	if cart == nil {
		return nil
	}

	cp := *cart
	cp.Lines = make(entity.CartLines, len(cart.Lines))
	copy(cp.Lines, cart.Lines)

	return &cp
}

func copyItem(item *entity.Item) *entity.Item {
	if item == nil {
		return nil
	}

	cp := *item

	return &cp
}

// Module provides the in-memory repositories.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewStore,
		NewTransactionManager,
		NewItemRepository,
		NewCartRepository,
	),
	fx.Invoke(seedOnStart),
)

func seedOnStart(lc fx.Lifecycle, cfg *config.Config, items repository.ItemRepository, logger *slog.Logger) {
	logger.Warn("Using in-memory storage; carts and items are lost on restart")
	if !cfg.Storage.SeedCatalog {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := seed.Catalog(ctx, items, logger)

			return err
		},
	})
}
