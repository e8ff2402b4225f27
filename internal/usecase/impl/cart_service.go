// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager     repository.TransactionManager
	cartRepo      repository.CartRepository
	itemRepo      repository.ItemRepository
	guestCartRepo repository.GuestCartRepository
	publisher     service.EventPublisher
	guestMerge    bool
	logger        *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	CartRepo      repository.CartRepository
	ItemRepo      repository.ItemRepository
	GuestCartRepo repository.GuestCartRepository
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	guestMerge := false
	if params.Config != nil {
		guestMerge = params.Config.Cart.GuestMerge.Enabled
	}

	return &cartService{
		txManager:     params.TxManager,
		cartRepo:      params.CartRepo,
		itemRepo:      params.ItemRepo,
		guestCartRepo: params.GuestCartRepo,
		publisher:     params.Publisher,
		guestMerge:    guestMerge,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart, creating it on first access.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.CartView, error) {
	if err := srv.cartRepo.CreateIfNotExists(ctx, userID); err != nil {
		return nil, srv.fail(ctx, "get cart", userID, err)
	}

	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, srv.fail(ctx, "get cart", userID, err)
	}

	view, err := resolveCart(ctx, srv.itemRepo, cart)
	if err != nil {
		return nil, srv.fail(ctx, "get cart", userID, err)
	}

	return view, nil
}

// AddItem adds quantity of an item. The stock check compares the requested quantity, not the
// accumulated line quantity.
func (srv *cartService) AddItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartView, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	var (
		updated *entity.Cart
		view    *entity.CartView
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()
		cartRepo := repoFactory.NewCartRepository()

		item, err := findCatalogItem(ctx, itemRepo, itemID)
		if err != nil {
			return err
		}
		if !item.HasStock(quantity) {
			return insufficientStock(item)
		}

		cart, err := lockOrCreateCart(ctx, cartRepo, userID)
		if err != nil {
			return err
		}

		cart.AddItem(item.ID, quantity, item.Price)
		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		updated = cart
		view, err = resolveCart(ctx, itemRepo, cart)

		return err
	})
	if err != nil {
		return nil, srv.fail(ctx, "add item", userID, err)
	}

	srv.log(ctx).Debug("Item added to cart",
		slog.Any("userID", userID),
		slog.Any("itemID", itemID),
		slog.Int("quantity", quantity),
	)
	srv.publish(ctx, service.CartEventItemAdded, updated, itemID, quantity)

	return view, nil
}

// UpdateQuantity sets the quantity of an existing line. Unlike RemoveItem and Clear,
// a missing cart or line is an error here.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartView, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	var (
		updated *entity.Cart
		view    *entity.CartView
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()
		cartRepo := repoFactory.NewCartRepository()

		item, err := findCatalogItem(ctx, itemRepo, itemID)
		if err != nil {
			return err
		}
		if !item.HasStock(quantity) {
			return insufficientStock(item)
		}

		cart, err := cartRepo.FindByUserIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrCartNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		if !cart.SetQuantity(item.ID, quantity, item.Price) {
			return domainerrors.ErrCartItemNotFound
		}
		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		updated = cart
		view, err = resolveCart(ctx, itemRepo, cart)

		return err
	})
	if err != nil {
		return nil, srv.fail(ctx, "update quantity", userID, err)
	}

	srv.publish(ctx, service.CartEventItemUpdated, updated, itemID, quantity)

	return view, nil
}

// RemoveItem drops a line. A missing cart degrades to an empty cart and nothing is saved.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartView, error) {
	var (
		updated *entity.Cart
		view    *entity.CartView
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()
		cartRepo := repoFactory.NewCartRepository()

		cart, err := cartRepo.FindByUserIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			view = entity.ResolveCart(entity.NewEmptyCart(userID), nil)

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		if cart.Lines.Find(itemID) >= 0 {
			cart.RemoveItem(itemID)
			if err := cartRepo.Save(ctx, cart); err != nil {
				return errors.Wrap(err, "failed to save cart")
			}
			updated = cart
		}

		view, err = resolveCart(ctx, itemRepo, cart)

		return err
	})
	if err != nil {
		return nil, srv.fail(ctx, "remove item", userID, err)
	}

	if updated != nil {
		srv.publish(ctx, service.CartEventItemRemoved, updated, itemID, 0)
	}

	return view, nil
}

// Clear empties the cart. A missing cart degrades to an empty cart and nothing is saved.
func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) (*entity.CartView, error) {
	var (
		updated *entity.Cart
		view    *entity.CartView
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		cart, err := cartRepo.FindByUserIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			view = entity.ResolveCart(entity.NewEmptyCart(userID), nil)

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		cart.Clear()
		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		updated = cart
		view = entity.ResolveCart(cart, nil)

		return nil
	})
	if err != nil {
		return nil, srv.fail(ctx, "clear cart", userID, err)
	}

	if updated != nil {
		srv.publish(ctx, service.CartEventCleared, updated, uuid.Nil, 0)
	}

	return view, nil
}

// Count returns the sum of line quantities without creating a cart.
func (srv *cartService) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, srv.fail(ctx, "count cart", userID, err)
	}

	return cart.Count(), nil
}

// MergeGuestCart folds a guest cart into the user's cart in one transaction. Guest lines whose
// items left the catalog are dropped; the rest are summed and priced from the catalog.
func (srv *cartService) MergeGuestCart(ctx context.Context, userID uuid.UUID, guestID string) (*entity.CartView, error) {
	if !srv.guestMerge {
		return nil, domainerrors.ErrGuestMergeDisabled
	}
	if guestID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("guest cart id is required")
	}

	// Held until the guest cart is deleted, so a concurrent guest add is either merged or kept.
	unlock, err := srv.guestCartRepo.Lock(ctx, guestID)
	if err != nil {
		return nil, srv.fail(ctx, "lock guest cart", userID, err)
	}
	defer unlock()

	guest, err := srv.guestCartRepo.Get(ctx, guestID)
	if err != nil {
		return nil, srv.fail(ctx, "load guest cart", userID, err)
	}

	var (
		merged  *entity.Cart
		view    *entity.CartView
		dropped int
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()
		cartRepo := repoFactory.NewCartRepository()

		items := map[uuid.UUID]*entity.Item{}
		if len(guest.Lines) > 0 {
			found, err := itemRepo.FindByIDs(ctx, guest.Lines.ItemIDs())
			if err != nil {
				return errors.Wrap(err, "failed to find guest cart items")
			}
			items = found
		}

		cart, err := lockOrCreateCart(ctx, cartRepo, userID)
		if err != nil {
			return err
		}

		for _, line := range guest.Lines {
			item, ok := items[line.ItemID]
			if !ok {
				dropped++

				continue
			}

			existing := 0
			if idx := cart.Lines.Find(item.ID); idx >= 0 {
				existing = cart.Lines[idx].Quantity
			}
			if !item.HasStock(existing + line.Quantity) {
				return insufficientStock(item)
			}

			cart.AddItem(item.ID, line.Quantity, item.Price)
		}

		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		merged = cart
		view, err = resolveCart(ctx, itemRepo, cart)

		return err
	})
	if err != nil {
		return nil, srv.fail(ctx, "merge guest cart", userID, err)
	}

	if err := srv.guestCartRepo.Delete(ctx, guestID); err != nil {
		srv.log(ctx).Warn("Failed to delete merged guest cart",
			slog.String("guestID", guestID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Guest cart merged",
		slog.Any("userID", userID),
		slog.Int("guestLines", len(guest.Lines)),
		slog.Int("droppedLines", dropped),
	)
	srv.publish(ctx, service.CartEventMerged, merged, uuid.Nil, guest.Count())

	return view, nil
}

// fail logs unexpected failures and passes business errors through unchanged.
func (srv *cartService) fail(ctx context.Context, operation string, userID uuid.UUID, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		return err
	}

	srv.log(ctx).Error("Cart operation failed",
		slog.String("operation", operation),
		slog.Any("userID", userID),
		slog.Any("error", err),
	)

	return errors.Wrapf(err, "failed to %s", operation)
}

// publish emits a cart event after commit. Failures never reach the caller.
func (srv *cartService) publish(ctx context.Context, eventType service.CartEventType, cart *entity.Cart, itemID uuid.UUID, quantity int) {
	if srv.publisher == nil || cart == nil {
		return
	}

	event := &service.CartEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		Type:        eventType,
		UserID:      cart.UserID.String(),
		Quantity:    quantity,
		CartCount:   cart.Count(),
		TotalAmount: cart.TotalAmount().String(),
		OccurredAt:  time.Now().UTC(),
	}
	if itemID != uuid.Nil {
		event.ItemID = itemID.String()
	}

	if err := srv.publisher.PublishCartEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish cart event",
			slog.String("type", string(eventType)),
			slog.String("eventID", event.EventID),
			slog.Any("error", err),
		)
	}
}

func findCatalogItem(ctx context.Context, itemRepo repository.ItemRepository, itemID uuid.UUID) (*entity.Item, error) {
	item, err := itemRepo.FindByID(ctx, itemID)
	if errors.Is(err, repository.ErrItemNotFound) {
		return nil, domainerrors.ErrItemNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find item")
	}

	return item, nil
}

func lockOrCreateCart(ctx context.Context, cartRepo repository.CartRepository, userID uuid.UUID) (*entity.Cart, error) {
	if err := cartRepo.CreateIfNotExists(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	cart, err := cartRepo.FindByUserIDForUpdate(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock cart")
	}

	return cart, nil
}

func insufficientStock(item *entity.Item) error {
	return domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf("only %d of %q in stock", item.Stock, item.Name))
}

// resolveCart joins the cart with the catalog. Items deleted since they were added come back as stale lines.
func resolveCart(ctx context.Context, itemRepo repository.ItemRepository, cart *entity.Cart) (*entity.CartView, error) {
	if len(cart.Lines) == 0 {
		return entity.ResolveCart(cart, nil), nil
	}

	items, err := itemRepo.FindByIDs(ctx, cart.Lines.ItemIDs())
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve cart items")
	}

	return entity.ResolveCart(cart, items), nil
}
