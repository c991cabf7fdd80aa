package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrChangeContainerQuantityCommandIsNotConstructed = errors.New(
	"ChangeContainerQuantityCommand must be created via NewChangeContainerQuantityCommand constructor",
)

// ChangeContainerQuantityCommand represents a request to set the absolute
// quantity stored in an existing container.
type ChangeContainerQuantityCommand struct { //nolint:recvcheck //using for validation
	containerID kernel.UUID
	quantity    kernel.Quantity

	guard kernel.ConstructorGuard
}

// NewChangeContainerQuantityCommand creates a command to resize a container.
// Quantity must be positive; use DeleteContainerCommand to drop a container.
func NewChangeContainerQuantityCommand(
	containerID kernel.UUID,
	quantity kernel.Quantity,
) (ChangeContainerQuantityCommand, error) {
	command := ChangeContainerQuantityCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setContainerID(containerID),
		command.setQuantity(quantity),
	); err != nil {
		return ChangeContainerQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeContainerQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeContainerQuantityCommandIsNotConstructed)
}

// ContainerID returns the container to resize.
func (c ChangeContainerQuantityCommand) ContainerID() kernel.UUID {
	return c.containerID
}

// Quantity returns the new absolute quantity.
func (c ChangeContainerQuantityCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c *ChangeContainerQuantityCommand) setContainerID(containerID kernel.UUID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}

	c.containerID = containerID
	return nil
}

func (c *ChangeContainerQuantityCommand) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if quantity.IsZero() {
		return errs.NewValueIsRequiredError("quantity")
	}

	c.quantity = quantity
	return nil
}
