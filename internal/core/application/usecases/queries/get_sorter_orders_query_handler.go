package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSorterOrdersQueryHandler reads the sorter worklist from the database.
type GetSorterOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSorterOrdersQueryHandler creates a handler for sorter worklist queries.
func NewGetSorterOrdersQueryHandler(db *gorm.DB) GetSorterOrdersQueryHandler {
	return GetSorterOrdersQueryHandler{db: db}
}

// Handle executes the worklist query.
// Returns processed and assembled orders created up to the cutoff, newest
// first.
func (h GetSorterOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSorterOrdersQuery,
) ([]GetSorterOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetSorterOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			su.shop_name,
			o.status,
			o.created_at
		FROM orders o
		JOIN shop_users su ON su.id = o.shop_user_id
		WHERE o.status IN (?, ?)
		  AND o.created_at <= ?
		ORDER BY o.created_at DESC
	`, order.Processed, order.Assembled, query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var shopName string
		var status order.Status
		var createdAt time.Time

		if err = rows.Scan(&id, &shopName, &status, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetSorterOrdersQueryResponse{
			OrderID:   orderID,
			ShopName:  shopName,
			Status:    status,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
