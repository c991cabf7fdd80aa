package cartrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Get retrieves the cart of a shop user. A user without stored lines gets
// an empty cart, not an error.
func (r *GormCartRepository) Get(ctx context.Context, shopUserID kernel.UUID) (*cart.Cart, error) {
	if err := shopUserID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "shop_user_id = ?", shopUserID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(shopUserID, dtos)
}

// Save replaces the stored line set of a cart with the aggregate's current
// one. Delete-then-insert keeps removed lines from lingering.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Delete(&CartItemDTO{}, "shop_user_id = ?", aggregate.ShopUserID().Bytes()).Error; err != nil {
		return err
	}

	dtos := fromDomain(aggregate)
	if len(dtos) == 0 {
		return nil
	}

	return db.Create(&dtos).Error
}

// Clear removes all stored lines of a shop user's cart.
func (r *GormCartRepository) Clear(ctx context.Context, shopUserID kernel.UUID) error {
	if err := shopUserID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&CartItemDTO{}, "shop_user_id = ?", shopUserID.Bytes()).Error
}
