// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and locking order entities
// together with their lines and containers.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all lines and containers.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by its identifier while
	// holding row-level locks on the order and its lines until the
	// surrounding transaction ends. Must be used by every command that
	// mutates container placement, so concurrent placements against the
	// same line are serialized and overflow checks stay correct.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderItemIDForUpdate resolves the owning order of a line and
	// retrieves it with the same locking semantics as GetForUpdate.
	GetByOrderItemIDForUpdate(ctx context.Context, orderItemID kernel.UUID) (*order.Order, error)

	// GetByContainerIDForUpdate resolves the owning order of a container
	// and retrieves it with the same locking semantics as GetForUpdate.
	GetByContainerIDForUpdate(ctx context.Context, containerID kernel.UUID) (*order.Order, error)
}
