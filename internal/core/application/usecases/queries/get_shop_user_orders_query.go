package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var ErrGetShopUserOrdersQueryIsNotConstructed = errors.New(
	"GetShopUserOrdersQuery must be created via NewGetShopUserOrdersQuery constructor",
)

// GetShopUserOrdersQuery retrieves the order history of one shop user,
// looked up by their authentication account.
type GetShopUserOrdersQuery struct {
	userID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetShopUserOrdersQuery creates a query for a shop user's order history.
func NewGetShopUserOrdersQuery(userID kernel.UUID) (GetShopUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetShopUserOrdersQuery{}, err
	}

	return GetShopUserOrdersQuery{
		userID: userID,
		guard:  kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShopUserOrdersQueryIsNotConstructed)
}

// UserID returns the authentication account of the shop user.
func (q GetShopUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// GetShopUserOrdersQueryResponse is one row of a shop user's order history.
type GetShopUserOrdersQueryResponse struct {
	OrderID   kernel.UUID
	Status    order.Status
	CreatedAt time.Time
	ShippedAt *time.Time
	TotalCost decimal.Decimal
}
