package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCartNotFound is returned when a user has never had a cart.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository stores exactly one cart per user.
type CartRepository interface {
	// FindByUserID retrieves the user's cart without locking it.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindByUserIDForUpdate retrieves the user's cart and locks it until the surrounding
	// transaction ends. Must be called through a transaction-bound repository.
	FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// CreateIfNotExists creates an empty cart for the user unless one already exists.
	CreateIfNotExists(ctx context.Context, userID uuid.UUID) error

	// Save writes the full line list and its derived total in a single row write.
	Save(ctx context.Context, cart *entity.Cart) error
}
