package shopuserrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shopuser"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShopUserRepository implements ShopUserRepository using GORM.
type GormShopUserRepository struct {
	db *gorm.DB
}

// NewGormShopUserRepository creates a new GORM shop user repository.
func NewGormShopUserRepository(db *gorm.DB) *GormShopUserRepository {
	return &GormShopUserRepository{db: db}
}

// Add saves a new shop user profile to the database.
func (r *GormShopUserRepository) Add(ctx context.Context, user *shopuser.ShopUser) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a shop user profile by ID.
func (r *GormShopUserRepository) Get(ctx context.Context, id kernel.UUID) (*shopuser.ShopUser, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShopUserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop_user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the profile linked to an authentication account.
func (r *GormShopUserRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*shopuser.ShopUser, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto ShopUserDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop_user", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
