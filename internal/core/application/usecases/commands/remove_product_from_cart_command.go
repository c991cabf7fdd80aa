package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

var ErrRemoveProductFromCartCommandIsNotConstructed = errors.New(
	"RemoveProductFromCartCommand must be created via NewRemoveProductFromCartCommand constructor",
)

// RemoveProductFromCartCommand represents a request to drop a product line
// from a shop user's cart.
type RemoveProductFromCartCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	productID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewRemoveProductFromCartCommand creates a command to remove a cart line.
func NewRemoveProductFromCartCommand(
	userID kernel.UUID,
	productID kernel.UUID,
) (RemoveProductFromCartCommand, error) {
	command := RemoveProductFromCartCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setProductID(productID),
	); err != nil {
		return RemoveProductFromCartCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProductFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductFromCartCommandIsNotConstructed)
}

// UserID returns the authentication account of the cart owner.
func (c RemoveProductFromCartCommand) UserID() kernel.UUID {
	return c.userID
}

// ProductID returns the product line to remove.
func (c RemoveProductFromCartCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *RemoveProductFromCartCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RemoveProductFromCartCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
