package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

var ErrGetPackerOrdersQueryIsNotConstructed = errors.New(
	"GetPackerOrdersQuery must be created via NewGetPackerOrdersQuery constructor",
)

// GetPackerOrdersQuery retrieves the packer's worklist: processed orders
// from the current fulfillment cycle that still contain unpacked weighed
// lines. The cutoff is supplied by the caller, typically derived from the
// configured BidCutoff.
//
// Example:
//
//	cutoff := bidCutoff.Today(time.Now())
//	query, _ := NewGetPackerOrdersQuery(cutoff)
//	orders, err := NewGetPackerOrdersQueryHandler(db).Handle(ctx, query)
type GetPackerOrdersQuery struct {
	cutoff time.Time

	guard kernel.ConstructorGuard
}

// NewGetPackerOrdersQuery creates a query for the packer worklist.
func NewGetPackerOrdersQuery(cutoff time.Time) (GetPackerOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetPackerOrdersQuery{}, ErrCutoffIsRequired
	}

	return GetPackerOrdersQuery{
		cutoff: cutoff,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPackerOrdersQueryIsNotConstructed)
}

// Cutoff returns the cycle deadline the worklist is limited to.
func (q GetPackerOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetPackerOrdersQueryResponse is one row of the packer worklist.
type GetPackerOrdersQueryResponse struct {
	OrderID       kernel.UUID
	ShopName      string
	CreatedAt     time.Time
	UnpackedItems int
}
