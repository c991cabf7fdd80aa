package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the fulfillment workflow.
//
// State transitions:
//
//	New ──> Processed <──> Assembled ──> Shipped
//
// The forward direction is linear; Processed and Assembled oscillate while
// sorters add and remove containers before shipment. Shipped is terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status of a freshly checked-out order,
	// before any container has been placed on its lines.
	New

	// Processed indicates container activity has started but at least one
	// line still has quantity outside containers.
	Processed

	// Assembled indicates every line's containerized quantity equals its
	// ordered quantity. Orders can fall back to Processed when a container
	// is removed or reduced.
	Assembled

	// Shipped indicates the order has left the warehouse.
	// This is a final state with no further transitions allowed.
	Shipped
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		New:       "New",
		Processed: "Processed",
		Assembled: "Assembled",
		Shipped:   "Shipped",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "New",
		Processed: "Processed",
		Assembled: "Assembled",
		Shipped:   "Shipped",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Processed, Assembled, Shipped.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Shipped
}

// Recompute derives the status after a container mutation from the order's
// aggregate assembly state.
//
// Valid source statuses are New, Processed and Assembled. Shipped orders
// must never reach this point; callers guard mutations with IsTerminal first.
//
// Returns:
//   - (Assembled, nil) when every line is fully containerized
//   - (Processed, nil) otherwise
//   - (0, error) when called on Shipped or an invalid status
func (s Status) Recompute(fullyAssembled bool) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s == Shipped {
		return 0, ErrOrderAlreadyShipped
	}

	if fullyAssembled {
		return Assembled, nil
	}
	return Processed, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Assembled -> Shipped (normal flow)
//   - New -> Shipped (an order without container activity may be shipped
//     directly by the warehouse, matching the historical workflow)
//   - Shipped -> Shipped (idempotent no-op)
//
// Invalid transitions:
//   - Processed -> Shipped (outstanding containers, ErrOrderNotAssembled)
//   - Unknown -> Shipped (invalid initial state)
//
// Returns:
//   - (Shipped, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Ship() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s == Processed {
		return 0, ErrOrderNotAssembled
	}

	return Shipped, nil
}
