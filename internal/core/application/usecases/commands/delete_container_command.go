package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

var ErrDeleteContainerCommandIsNotConstructed = errors.New(
	"DeleteContainerCommand must be created via NewDeleteContainerCommand constructor",
)

// DeleteContainerCommand represents a request to remove a container and
// return its quantity to the missing amount of the owning line.
type DeleteContainerCommand struct { //nolint:recvcheck //using for validation
	containerID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewDeleteContainerCommand creates a command to delete a container.
func NewDeleteContainerCommand(containerID kernel.UUID) (DeleteContainerCommand, error) {
	command := DeleteContainerCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := command.setContainerID(containerID); err != nil {
		return DeleteContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteContainerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteContainerCommandIsNotConstructed)
}

// ContainerID returns the container to delete.
func (c DeleteContainerCommand) ContainerID() kernel.UUID {
	return c.containerID
}

func (c *DeleteContainerCommand) setContainerID(containerID kernel.UUID) error {
	if err := containerID.Validate(); err != nil {
		return err
	}

	c.containerID = containerID
	return nil
}
