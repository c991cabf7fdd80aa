// Package order provides domain entities and business logic for the order
// fulfillment workflow. It implements the Order aggregate root with its lines
// and containers, the container-quantity reconciliation that prevents packing
// or shipping more than was ordered, and the lifecycle state machine.
//
// The package includes:
//   - Order: The aggregate root owning lines, containers, and lifecycle state
//   - OrderItem: One order line with price/quantity snapshot, packed flag,
//     and the overflow invariant over its containers
//   - Container: A physical box holding some quantity of one line
//   - Status: A state machine enforcing New -> Processed <-> Assembled -> Shipped
//
// Key business rules:
//   - Orders are created from a non-empty cart, one line per cart line
//   - A line's containerized quantity never exceeds its ordered quantity
//   - Weight-type lines must be marked packed before containerization
//   - Order status is recomputed synchronously after every container mutation
//   - Shipped is terminal; no mutation of a shipped order is possible
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
