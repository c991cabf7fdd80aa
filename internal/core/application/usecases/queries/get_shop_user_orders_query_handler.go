package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetShopUserOrdersQueryHandler reads a shop user's order history from the
// database.
type GetShopUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShopUserOrdersQueryHandler creates a handler for order history queries.
func NewGetShopUserOrdersQueryHandler(db *gorm.DB) GetShopUserOrdersQueryHandler {
	return GetShopUserOrdersQueryHandler{db: db}
}

// Handle executes the history query, newest orders first.
// The total cost is recomputed from the line snapshots, so it reflects the
// prices at checkout time rather than the current catalog.
func (h GetShopUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShopUserOrdersQuery,
) ([]GetShopUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetShopUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.created_at,
			o.shipped_at,
			COALESCE(SUM(ROUND(i.price * i.quantity, 2)), 0) AS total_cost
		FROM orders o
		JOIN shop_users su ON su.id = o.shop_user_id
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE su.user_id = ?
		GROUP BY o.id, o.status, o.created_at, o.shipped_at
		ORDER BY o.created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var status order.Status
		var createdAt time.Time
		var shippedAt *time.Time
		var totalCost decimal.Decimal

		if err = rows.Scan(&id, &status, &createdAt, &shippedAt, &totalCost); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetShopUserOrdersQueryResponse{
			OrderID:   orderID,
			Status:    status,
			CreatedAt: createdAt,
			ShippedAt: shippedAt,
			TotalCost: totalCost,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
