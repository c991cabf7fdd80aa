// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and shop user.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ShopUserID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status      int            `gorm:"type:int;not null;index"`
	CreatedAt   time.Time      `gorm:"not null;index"`
	AssembledAt *time.Time     `gorm:""`
	ShippedAt   *time.Time     `gorm:""`
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order lines.
// Price and quantity columns use decimal(10,2) so the database arithmetic in
// query handlers matches the domain's two-decimal rounding.
type OrderItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName  string          `gorm:"type:varchar(255);not null"`
	IsWeightType bool            `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Packed       bool            `gorm:"not null"`
	Containers   []ContainerDTO  `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// ContainerDTO represents the database structure for persisting containers.
type ContainerDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Number      string          `gorm:"type:varchar(64);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the database table name for container entities.
func (ContainerDTO) TableName() string {
	return "containers"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the full aggregate tree including lines and their containers.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		itemID := item.ID().Bytes()
		containers := make([]ContainerDTO, 0, len(item.Containers()))

		for _, container := range item.Containers() {
			containers = append(containers, ContainerDTO{
				ID:          container.ID().Bytes(),
				OrderItemID: itemID,
				Number:      container.Number(),
				Quantity:    container.Quantity().Decimal(),
			})
		}

		items = append(items, OrderItemDTO{
			ID:           itemID,
			OrderID:      orderID,
			ProductID:    item.ProductID().Bytes(),
			ProductName:  item.ProductName(),
			IsWeightType: item.IsWeightType(),
			Price:        item.Price().Decimal(),
			Quantity:     item.Quantity().Decimal(),
			Packed:       item.IsPacked(),
			Containers:   containers,
		})
	}

	return OrderDTO{
		ID:          orderID,
		ShopUserID:  aggregate.ShopUserID().Bytes(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		AssembledAt: aggregate.AssembledAt(),
		ShippedAt:   aggregate.ShippedAt(),
		Items:       items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete tree using the Restore constructors.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shopUserID, err := kernel.UUIDFromBytes(dto.ShopUserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		shopUserID,
		dto.CreatedAt,
		dto.AssembledAt,
		dto.ShippedAt,
		order.Status(dto.Status),
		items,
	)
}

// itemToDomain converts an order line DTO to its domain entity.
func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	containers := make([]*order.Container, 0, len(dto.Containers))
	for _, containerDto := range dto.Containers {
		container, containerErr := containerToDomain(containerDto)
		if containerErr != nil {
			return nil, containerErr
		}
		containers = append(containers, container)
	}

	return order.RestoreOrderItem(
		id,
		productID,
		dto.ProductName,
		dto.IsWeightType,
		price,
		quantity,
		dto.Packed,
		containers,
	)
}

// containerToDomain converts a container DTO to its domain entity.
func containerToDomain(dto ContainerDTO) (*order.Container, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	return order.RestoreContainer(id, dto.Number, quantity)
}
