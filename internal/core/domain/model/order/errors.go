package order

import "errors"

// Domain errors carry fixed, user-displayable messages. The HTTP adapter
// translates them to status codes; the service layer never suppresses them.
var (
	// ErrCartIsEmpty is returned when checking out a cart with no lines.
	ErrCartIsEmpty = errors.New("cannot create an order from an empty cart")

	// ErrItemNotPacked is returned when placing a container on a weight-type
	// line that has not been marked packed yet.
	ErrItemNotPacked = errors.New("order line is not packed yet")

	// ErrContainerOverflow is returned when a container operation would push
	// the total containerized quantity of a line above its ordered quantity.
	ErrContainerOverflow = errors.New("quantity in containers cannot exceed the ordered quantity")

	// ErrOrderNotAssembled is returned when shipping an order that still has
	// outstanding quantity to containerize.
	ErrOrderNotAssembled = errors.New("order is not fully assembled yet")

	// ErrOrderAlreadyShipped is returned when mutating containers or packing
	// flags of an order in the terminal Shipped state.
	ErrOrderAlreadyShipped = errors.New("shipped order cannot be modified")

	// ErrOrderItemNotFound is returned when the order has no line with the given ID.
	ErrOrderItemNotFound = errors.New("order line not found")

	// ErrContainerNotFound is returned when no container with the given ID
	// exists on any line of the order.
	ErrContainerNotFound = errors.New("container not found")
)
