package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

var ErrGetSorterOrdersQueryIsNotConstructed = errors.New(
	"GetSorterOrdersQuery must be created via NewGetSorterOrdersQuery constructor",
)

// GetSorterOrdersQuery retrieves the sorter's worklist: every processed or
// assembled order of the current cycle, so the sorter sees both orders
// awaiting containers and orders ready for dispatch.
type GetSorterOrdersQuery struct {
	cutoff time.Time

	guard kernel.ConstructorGuard
}

// NewGetSorterOrdersQuery creates a query for the sorter worklist.
func NewGetSorterOrdersQuery(cutoff time.Time) (GetSorterOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetSorterOrdersQuery{}, ErrCutoffIsRequired
	}

	return GetSorterOrdersQuery{
		cutoff: cutoff,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSorterOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSorterOrdersQueryIsNotConstructed)
}

// Cutoff returns the cycle deadline the worklist is limited to.
func (q GetSorterOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetSorterOrdersQueryResponse is one row of the sorter worklist.
type GetSorterOrdersQueryResponse struct {
	OrderID   kernel.UUID
	ShopName  string
	Status    order.Status
	CreatedAt time.Time
}
