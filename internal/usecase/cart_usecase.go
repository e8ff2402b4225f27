package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase is the façade the presentation layer calls for authenticated carts.
// Every mutation returns the cart with item references resolved.
type CartUsecase interface {
	// GetCart returns the user's cart, creating an empty one on first access.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.CartView, error)

	// AddItem adds quantity of itemID, incrementing an existing line and recapturing its price.
	AddItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartView, error)

	// UpdateQuantity sets the quantity of an existing line and recaptures its price.
	// It fails when the user has no cart or the line is absent.
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartView, error)

	// RemoveItem drops the line for itemID. Absent lines and absent carts are not errors.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartView, error)

	// Clear empties the cart. An absent cart is treated as empty.
	Clear(ctx context.Context, userID uuid.UUID) (*entity.CartView, error)

	// Count returns the sum of line quantities, 0 for a never-created cart.
	Count(ctx context.Context, userID uuid.UUID) (int, error)

	// MergeGuestCart folds a guest cart into the user's cart and deletes the guest cart.
	MergeGuestCart(ctx context.Context, userID uuid.UUID, guestID string) (*entity.CartView, error)
}
