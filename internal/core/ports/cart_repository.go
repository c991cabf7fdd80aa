package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for shopping carts.
// A cart is keyed by the owning shop user; an absent cart is
// indistinguishable from an empty one.
type CartRepository interface {
	// Get retrieves the cart of a shop user. Returns an empty cart when
	// the user has no stored lines.
	Get(ctx context.Context, shopUserID kernel.UUID) (*cart.Cart, error)

	// Save persists the full line set of a cart, replacing the stored one.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Clear removes all stored lines of a shop user's cart.
	Clear(ctx context.Context, shopUserID kernel.UUID) error
}
