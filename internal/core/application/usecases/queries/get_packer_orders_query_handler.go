package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPackerOrdersQueryHandler reads the packer worklist from the database.
type GetPackerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPackerOrdersQueryHandler creates a handler for packer worklist queries.
// Requires a GORM database connection for query execution.
func NewGetPackerOrdersQueryHandler(db *gorm.DB) GetPackerOrdersQueryHandler {
	return GetPackerOrdersQueryHandler{db: db}
}

// Handle executes the worklist query.
// Returns processed orders created up to the cutoff that still have at
// least one unpacked weighed line, oldest first so the backlog drains in
// arrival order.
func (h GetPackerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPackerOrdersQuery,
) ([]GetPackerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPackerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			su.shop_name,
			o.created_at,
			COUNT(i.id) AS unpacked_items
		FROM orders o
		JOIN shop_users su ON su.id = o.shop_user_id
		JOIN order_items i ON i.order_id = o.id AND i.is_weight_type AND NOT i.packed
		WHERE o.status = ?
		  AND o.created_at <= ?
		GROUP BY o.id, su.shop_name, o.created_at
		ORDER BY o.created_at
	`, order.Processed, query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var shopName string
		var createdAt time.Time
		var unpackedItems int

		if err = rows.Scan(&id, &shopName, &createdAt, &unpackedItems); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetPackerOrdersQueryResponse{
			OrderID:       orderID,
			ShopName:      shopName,
			CreatedAt:     createdAt,
			UnpackedItems: unpackedItems,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
