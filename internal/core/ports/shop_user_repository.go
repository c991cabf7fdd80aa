package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shopuser"
)

// ShopUserRepository defines the persistence contract for shop user profiles.
type ShopUserRepository interface {
	// Add persists a new shop user profile.
	Add(ctx context.Context, user *shopuser.ShopUser) error

	// Get retrieves a shop user profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shopuser.ShopUser, error)

	// GetByUserID retrieves the profile linked to an authentication account.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*shopuser.ShopUser, error)
}
