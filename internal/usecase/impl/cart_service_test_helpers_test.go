package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/guestcart"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/pubsub"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// cartTestFixture wires the cart service to the in-memory store and an in-memory guest cart bucket.
type cartTestFixture struct {
	service   usecase.CartUsecase
	itemRepo  repository.ItemRepository
	cartRepo  repository.CartRepository
	guestRepo repository.GuestCartRepository
}

type cartFixtureOption func(*CartServiceParams)

func withGuestMerge() cartFixtureOption {
	return func(p *CartServiceParams) {
		p.Config.Cart.GuestMerge.Enabled = true
	}
}

func withPublisher(publisher service.EventPublisher) cartFixtureOption {
	return func(p *CartServiceParams) {
		p.Publisher = publisher
	}
}

// gatedTxManager parks every transaction until release is closed and reports the first arrival.
type gatedTxManager struct {
	repository.TransactionManager
	entered chan struct{}
	release chan struct{}
}

func (m *gatedTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	select {
	case m.entered <- struct{}{}:
	default:
	}
	<-m.release

	return m.TransactionManager.Execute(ctx, fn)
}

func withGatedTransactions(gate *gatedTxManager) cartFixtureOption {
	return func(p *CartServiceParams) {
		gate.TransactionManager = p.TxManager
		p.TxManager = gate
	}
}

func createTestCartService(t *testing.T, opts ...cartFixtureOption) *cartTestFixture {
	t.Helper()

	store := memory.NewStore()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	logger := newDiscardLogger()
	params := CartServiceParams{
		TxManager:     memory.NewTransactionManager(store),
		CartRepo:      memory.NewCartRepository(store),
		ItemRepo:      memory.NewItemRepository(store),
		GuestCartRepo: guestcart.NewRepository(bucket, "guest-carts/"),
		Publisher:     pubsub.NewNoopPublisher(logger),
		Config:        &config.Config{},
		Logger:        logger,
	}
	for _, opt := range opts {
		opt(&params)
	}

	return &cartTestFixture{
		service:   NewCartService(params),
		itemRepo:  params.ItemRepo,
		cartRepo:  params.CartRepo,
		guestRepo: params.GuestCartRepo,
	}
}

func (f *cartTestFixture) addCatalogItem(t *testing.T, name, price string, stock int) *entity.Item {
	t.Helper()

	now := time.Now().UTC()
	item := &entity.Item{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		Category:    entity.CategoryOther,
		Image:       entity.DefaultItemImage,
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, f.itemRepo.Create(context.Background(), item))

	return item
}

// requireTotalInvariant checks totalAmount against the sum of line subtotals.
func requireTotalInvariant(t *testing.T, view *entity.CartView) {
	t.Helper()

	sum := decimal.Zero
	count := 0
	for _, line := range view.Items {
		sum = sum.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		count += line.Quantity
	}
	require.True(t, sum.Equal(view.TotalAmount), "total %s != sum of lines %s", view.TotalAmount, sum)
	require.Equal(t, count, view.Count)
}

func lineFor(view *entity.CartView, itemID uuid.UUID) *entity.ResolvedLine {
	for i := range view.Items {
		if view.Items[i].ItemID == itemID {
			return &view.Items[i]
		}
	}

	return nil
}

func newTestCatalogItem(id uuid.UUID, stock int) *entity.Item {
	return &entity.Item{
		ID:       id,
		Name:     "Widget",
		Price:    decimal.NewFromInt(3),
		Category: entity.CategoryOther,
		Stock:    stock,
	}
}

func newEmptyTestCart(userID uuid.UUID) *entity.Cart {
	cart := entity.NewEmptyCart(userID)
	cart.ID = uuid.New()

	return cart
}

func createTestGuestCart(guestID string, itemID uuid.UUID, quantity int) *entity.GuestCart {
	cart := entity.NewGuestCart(guestID)
	cart.Lines = cart.Lines.Add(itemID, quantity, decimal.Zero)

	return cart
}
