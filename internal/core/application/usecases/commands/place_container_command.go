package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrPlaceContainerCommandIsNotConstructed = errors.New(
	"PlaceContainerCommand must be created via NewPlaceContainerCommand constructor",
)

// PlaceContainerCommand represents a request to put a quantity of one order
// line into a numbered container. Placing into a number the line already
// uses increments that container instead of creating a second one.
//
// Example:
//
//	qty, _ := kernel.QuantityFromString("1.82")
//	cmd, err := NewPlaceContainerCommand(orderItemID, "C1", qty)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewPlaceContainerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("placement failed: %w", err)
//	}
type PlaceContainerCommand struct { //nolint:recvcheck //using for validation
	orderItemID kernel.UUID
	number      string
	quantity    kernel.Quantity

	guard kernel.ConstructorGuard
}

// NewPlaceContainerCommand creates a command to place part of an order line
// into a container. Number must be non-empty and quantity positive.
func NewPlaceContainerCommand(
	orderItemID kernel.UUID,
	number string,
	quantity kernel.Quantity,
) (PlaceContainerCommand, error) {
	command := PlaceContainerCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderItemID(orderItemID),
		command.setNumber(number),
		command.setQuantity(quantity),
	); err != nil {
		return PlaceContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceContainerCommand) Validate() error {
	return c.guard.Validate(ErrPlaceContainerCommandIsNotConstructed)
}

// OrderItemID returns the order line to place.
func (c PlaceContainerCommand) OrderItemID() kernel.UUID {
	return c.orderItemID
}

// Number returns the container number.
func (c PlaceContainerCommand) Number() string {
	return c.number
}

// Quantity returns the amount to place.
func (c PlaceContainerCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c *PlaceContainerCommand) setOrderItemID(orderItemID kernel.UUID) error {
	if err := orderItemID.Validate(); err != nil {
		return err
	}

	c.orderItemID = orderItemID
	return nil
}

func (c *PlaceContainerCommand) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}

	c.number = number
	return nil
}

func (c *PlaceContainerCommand) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if quantity.IsZero() {
		return errs.NewValueIsRequiredError("quantity")
	}

	c.quantity = quantity
	return nil
}
