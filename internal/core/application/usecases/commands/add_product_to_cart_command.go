package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrAddProductToCartCommandIsNotConstructed = errors.New(
	"AddProductToCartCommand must be created via NewAddProductToCartCommand constructor",
)

// AddProductToCartCommand represents a request to put a quantity of a
// catalog product into a shop user's cart.
type AddProductToCartCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	productID kernel.UUID
	quantity  kernel.Quantity

	guard kernel.ConstructorGuard
}

// NewAddProductToCartCommand creates a command to add a product to a cart.
// Quantity must be a constructed, positive value.
func NewAddProductToCartCommand(
	userID kernel.UUID,
	productID kernel.UUID,
	quantity kernel.Quantity,
) (AddProductToCartCommand, error) {
	command := AddProductToCartCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setProductID(productID),
		command.setQuantity(quantity),
	); err != nil {
		return AddProductToCartCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddProductToCartCommandIsNotConstructed)
}

// UserID returns the authentication account of the cart owner.
func (c AddProductToCartCommand) UserID() kernel.UUID {
	return c.userID
}

// ProductID returns the catalog product to add.
func (c AddProductToCartCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the amount to add.
func (c AddProductToCartCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c *AddProductToCartCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *AddProductToCartCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddProductToCartCommand) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if quantity.IsZero() {
		return errs.NewValueIsRequiredError("quantity")
	}

	c.quantity = quantity
	return nil
}
