// Package cart provides the shopping cart aggregate a merchandiser fills
// before checking out an order. Each line carries a price snapshot taken when
// the product was added, so a later catalog price change does not silently
// reprice an already-reviewed cart.
package cart

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart factory method.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrLineNotFound is returned when removing a product that is not in the cart.
	ErrLineNotFound = errors.New("product not found in cart")
)

// Cart holds the lines a shop user intends to order. It is keyed by the shop
// user, not by session: one active cart per merchandiser.
type Cart struct {
	shopUserID kernel.UUID
	lines      []Line

	guard kernel.ConstructorGuard
}

// NewCart creates an empty cart for the given shop user.
func NewCart(shopUserID kernel.UUID) (*Cart, error) {
	if err := shopUserID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		shopUserID: shopUserID,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// RestoreCart reconstructs a cart with its lines from persistent storage.
func RestoreCart(shopUserID kernel.UUID, lines []Line) (*Cart, error) {
	cart, err := NewCart(shopUserID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
	}
	cart.lines = lines

	return cart, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// ShopUserID returns the owner of the cart.
func (c *Cart) ShopUserID() kernel.UUID {
	return c.shopUserID
}

// Lines returns a copy of the cart lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Add puts a line into the cart. If a line for the same product already
// exists, the quantities are added and the existing price snapshot is kept.
func (c *Cart) Add(line Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	for i, existing := range c.lines {
		if existing.ProductID().IsEqual(line.ProductID()) {
			merged, err := existing.withQuantity(existing.Quantity().Add(line.Quantity()))
			if err != nil {
				return err
			}
			c.lines[i] = merged
			return nil
		}
	}

	c.lines = append(c.lines, line)
	return nil
}

// Remove deletes the line for the given product.
// Returns ErrLineNotFound if the product is not in the cart.
func (c *Cart) Remove(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	for i, existing := range c.lines {
		if existing.ProductID().IsEqual(productID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}

	return ErrLineNotFound
}

// TotalPrice returns the rounded sum of line totals.
func (c *Cart) TotalPrice() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range c.lines {
		total = total.Add(line.TotalPrice())
	}
	return total
}
