// Package shopuserrepo provides data transfer objects and mapping functions
// for shop user persistence.
package shopuserrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shopuser"

	"github.com/google/uuid"
)

// ShopUserDTO represents the database structure for persisting shop user profiles.
type ShopUserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name     string    `gorm:"type:varchar(255);not null"`
	ShopName string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for shop user entities.
func (ShopUserDTO) TableName() string {
	return "shop_users"
}

func fromDomain(user *shopuser.ShopUser) ShopUserDTO {
	return ShopUserDTO{
		ID:       user.ID().Bytes(),
		UserID:   user.UserID().Bytes(),
		Name:     user.Name(),
		ShopName: user.ShopName(),
	}
}

func toDomain(dto ShopUserDTO) (*shopuser.ShopUser, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return shopuser.NewShopUser(id, userID, dto.Name, dto.ShopName)
}
