package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// GuestCartRepository is a key-value store of guest carts.
// Get never fails for a missing key; it returns an empty cart instead.
type GuestCartRepository interface {
	Get(ctx context.Context, guestID string) (*entity.GuestCart, error)
	Put(ctx context.Context, cart *entity.GuestCart) error
	Delete(ctx context.Context, guestID string) error

	// Lock serializes read-modify-write cycles on one guest cart. Callers must invoke the
	// returned unlock func exactly once; it is safe to call again.
	Lock(ctx context.Context, guestID string) (unlock func(), err error)
}
