package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// GuestCartUsecase manages unauthenticated carts. It never consults the catalog:
// new lines carry a zero price until merged into a user cart.
type GuestCartUsecase interface {
	GetCart(ctx context.Context, guestID string) (*entity.GuestCart, error)
	AddItem(ctx context.Context, guestID string, itemID uuid.UUID, quantity int) (*entity.GuestCart, error)
	// UpdateQuantity sets the quantity of an existing line; absent lines are left alone.
	UpdateQuantity(ctx context.Context, guestID string, itemID uuid.UUID, quantity int) (*entity.GuestCart, error)
	RemoveItem(ctx context.Context, guestID string, itemID uuid.UUID) (*entity.GuestCart, error)
	Clear(ctx context.Context, guestID string) error
	Count(ctx context.Context, guestID string) (int, error)
}
