package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type guestCartService struct {
	guestCartRepo repository.GuestCartRepository
	logger        *slog.Logger
}

// NewGuestCartService creates a new guest cart service instance
func NewGuestCartService(guestCartRepo repository.GuestCartRepository, logger *slog.Logger) usecase.GuestCartUsecase {
	return &guestCartService{
		guestCartRepo: guestCartRepo,
		logger:        logger,
	}
}

func (srv *guestCartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *guestCartService) GetCart(ctx context.Context, guestID string) (*entity.GuestCart, error) {
	if guestID == "" {
		return nil, errGuestIDRequired()
	}

	cart, err := srv.guestCartRepo.Get(ctx, guestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guest cart")
	}

	return cart, nil
}

// AddItem appends or increments a line. The catalog is not consulted, so the line price stays zero.
func (srv *guestCartService) AddItem(ctx context.Context, guestID string, itemID uuid.UUID, quantity int) (*entity.GuestCart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	cart, err := srv.mutate(ctx, guestID, func(cart *entity.GuestCart) bool {
		cart.Lines = cart.Lines.Add(itemID, quantity, decimal.Zero)

		return true
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Item added to guest cart", slog.String("guestID", guestID), slog.Any("itemID", itemID))

	return cart, nil
}

func (srv *guestCartService) UpdateQuantity(ctx context.Context, guestID string, itemID uuid.UUID, quantity int) (*entity.GuestCart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	return srv.mutate(ctx, guestID, func(cart *entity.GuestCart) bool {
		return cart.Lines.Set(itemID, quantity, decimal.Zero)
	})
}

func (srv *guestCartService) RemoveItem(ctx context.Context, guestID string, itemID uuid.UUID) (*entity.GuestCart, error) {
	return srv.mutate(ctx, guestID, func(cart *entity.GuestCart) bool {
		if cart.Lines.Find(itemID) < 0 {
			return false
		}
		cart.Lines = cart.Lines.Remove(itemID)

		return true
	})
}

// Clear deletes the stored guest cart outright.
func (srv *guestCartService) Clear(ctx context.Context, guestID string) error {
	unlock, err := srv.lock(ctx, guestID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := srv.guestCartRepo.Delete(ctx, guestID); err != nil {
		return errors.Wrap(err, "failed to delete guest cart")
	}

	return nil
}

// mutate runs apply on the stored cart under the guest id's lock and saves it when apply
// reports a change.
func (srv *guestCartService) mutate(ctx context.Context, guestID string, apply func(*entity.GuestCart) bool) (*entity.GuestCart, error) {
	unlock, err := srv.lock(ctx, guestID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := srv.GetCart(ctx, guestID)
	if err != nil {
		return nil, err
	}

	if !apply(cart) {
		return cart, nil
	}
	if err := srv.guestCartRepo.Put(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save guest cart")
	}

	return cart, nil
}

func (srv *guestCartService) lock(ctx context.Context, guestID string) (func(), error) {
	if guestID == "" {
		return nil, errGuestIDRequired()
	}

	unlock, err := srv.guestCartRepo.Lock(ctx, guestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock guest cart")
	}

	return unlock, nil
}

func (srv *guestCartService) Count(ctx context.Context, guestID string) (int, error) {
	cart, err := srv.GetCart(ctx, guestID)
	if err != nil {
		return 0, err
	}

	return cart.Count(), nil
}

func errGuestIDRequired() error {
	return domainerrors.ErrValidationFailed.WithDetails("guest cart id is required")
}
