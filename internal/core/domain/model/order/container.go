package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrContainerNumberIsRequired is returned when creating a container without a number.
	ErrContainerNumberIsRequired = errs.NewValueIsRequiredError("container number")

	// ErrContainerQuantityIsRequired is returned when a container quantity is zero.
	ErrContainerQuantityIsRequired = errs.NewValueIsRequiredError("container quantity")

	// ErrContainerIsNotConstructed is returned when a Container instance was not
	// created through the newContainer factory.
	ErrContainerIsNotConstructed = errors.New("Container must be created via its constructor")
)

// Container represents a physical box or crate holding some quantity of one
// order line. The number is entered by the sorter and is not unique: the
// same physical container can hold quantities of several lines, each line
// tracking its own Container entity with the shared number.
//
// Containers are created and mutated only through their owning OrderItem,
// which enforces that the sum of container quantities never exceeds the
// line's ordered quantity.
type Container struct {
	id       kernel.UUID
	number   string
	quantity kernel.Quantity

	guard kernel.ConstructorGuard
}

// newContainer creates a container with validation. Quantity must be positive;
// the overflow check against the line is the caller's responsibility.
func newContainer(id kernel.UUID, number string, quantity kernel.Quantity) (*Container, error) {
	container := &Container{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		container.setID(id),
		container.setNumber(number),
		container.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return container, nil
}

// RestoreContainer reconstructs a container from persistent storage.
func RestoreContainer(id kernel.UUID, number string, quantity kernel.Quantity) (*Container, error) {
	return newContainer(id, number, quantity)
}

// Validate ensures the Container was properly constructed.
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

// IsEqual compares two containers by their unique identifiers.
func (c *Container) IsEqual(other *Container) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the container's unique identifier.
func (c *Container) ID() kernel.UUID {
	return c.id
}

// Number returns the human-entered container number.
func (c *Container) Number() string {
	return c.number
}

// Quantity returns the amount of the line's product held by this container.
func (c *Container) Quantity() kernel.Quantity {
	return c.quantity
}

func (c *Container) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Container) setNumber(number string) error {
	if number == "" {
		return ErrContainerNumberIsRequired
	}
	c.number = number
	return nil
}

func (c *Container) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if quantity.IsZero() {
		return ErrContainerQuantityIsRequired
	}
	c.quantity = quantity
	return nil
}

// addQuantity increments the held amount. Called by OrderItem only, after
// the line-level overflow check has passed.
func (c *Container) addQuantity(quantity kernel.Quantity) error {
	return c.setQuantity(c.quantity.Add(quantity))
}
