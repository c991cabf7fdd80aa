package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

var ErrMarkItemPackedCommandIsNotConstructed = errors.New(
	"MarkItemPackedCommand must be created via NewMarkItemPackedCommand constructor",
)

// MarkItemPackedCommand represents a packer's confirmation that one weighed
// order line is ready for containerization.
type MarkItemPackedCommand struct { //nolint:recvcheck //using for validation
	orderItemID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewMarkItemPackedCommand creates a command to mark one line as packed.
func NewMarkItemPackedCommand(orderItemID kernel.UUID) (MarkItemPackedCommand, error) {
	command := MarkItemPackedCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := command.setOrderItemID(orderItemID); err != nil {
		return MarkItemPackedCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemPackedCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemPackedCommandIsNotConstructed)
}

// OrderItemID returns the line to mark.
func (c MarkItemPackedCommand) OrderItemID() kernel.UUID {
	return c.orderItemID
}

func (c *MarkItemPackedCommand) setOrderItemID(orderItemID kernel.UUID) error {
	if err := orderItemID.Validate(); err != nil {
		return err
	}

	c.orderItemID = orderItemID
	return nil
}
