package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrBulkPlaceContainerCommandIsNotConstructed = errors.New(
	"BulkPlaceContainerCommand must be created via NewBulkPlaceContainerCommand constructor",
)

// BulkPlaceContainerCommand represents a request to place every packed,
// incomplete line of an order into one container for its full missing
// quantity.
type BulkPlaceContainerCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	number  string

	guard kernel.ConstructorGuard
}

// NewBulkPlaceContainerCommand creates a command for whole-order placement.
func NewBulkPlaceContainerCommand(orderID kernel.UUID, number string) (BulkPlaceContainerCommand, error) {
	command := BulkPlaceContainerCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNumber(number),
	); err != nil {
		return BulkPlaceContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkPlaceContainerCommand) Validate() error {
	return c.guard.Validate(ErrBulkPlaceContainerCommandIsNotConstructed)
}

// OrderID returns the order to place.
func (c BulkPlaceContainerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number returns the container number to place into.
func (c BulkPlaceContainerCommand) Number() string {
	return c.number
}

func (c *BulkPlaceContainerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *BulkPlaceContainerCommand) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}

	c.number = number
	return nil
}
