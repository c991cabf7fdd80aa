package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

var ErrMarkOrderPackedCommandIsNotConstructed = errors.New(
	"MarkOrderPackedCommand must be created via NewMarkOrderPackedCommand constructor",
)

// MarkOrderPackedCommand represents a packer's confirmation that every line
// of an order is ready for containerization.
type MarkOrderPackedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewMarkOrderPackedCommand creates a command to mark a whole order as packed.
func NewMarkOrderPackedCommand(orderID kernel.UUID) (MarkOrderPackedCommand, error) {
	command := MarkOrderPackedCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return MarkOrderPackedCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPackedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPackedCommandIsNotConstructed)
}

// OrderID returns the order to mark.
func (c MarkOrderPackedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderPackedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
