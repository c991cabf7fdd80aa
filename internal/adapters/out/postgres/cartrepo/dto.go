// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. A cart has no table of its own; it is the set of
// cart_items rows keyed by the owning shop user.
package cartrepo

import (
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemDTO represents one stored cart line.
type CartItemDTO struct {
	ShopUserID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductName  string          `gorm:"type:varchar(255);not null"`
	IsWeightType bool            `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the database table name for cart line entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(aggregate *cart.Cart) []CartItemDTO {
	shopUserID := aggregate.ShopUserID().Bytes()
	dtos := make([]CartItemDTO, 0, aggregate.Len())

	for _, line := range aggregate.Lines() {
		dtos = append(dtos, CartItemDTO{
			ShopUserID:   shopUserID,
			ProductID:    line.ProductID().Bytes(),
			ProductName:  line.ProductName(),
			IsWeightType: line.IsWeightType(),
			Price:        line.Price().Decimal(),
			Quantity:     line.Quantity().Decimal(),
		})
	}

	return dtos
}

func toDomain(shopUserID kernel.UUID, dtos []CartItemDTO) (*cart.Cart, error) {
	lines := make([]cart.Line, 0, len(dtos))

	for _, dto := range dtos {
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

		line, err := cart.NewLine(productID, dto.ProductName, dto.IsWeightType, price, quantity)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return cart.RestoreCart(shopUserID, lines)
}
