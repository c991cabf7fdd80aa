// Package shopuser provides the shop staff entity on whose behalf orders are raised.
// A ShopUser links an account in the surrounding user directory to the shop
// they order for; merchandisers must have one before they can check out a cart.
package shopuser

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a shop user without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrShopUserIsNotConstructed is returned when a ShopUser instance was not created
	// through the NewShopUser factory method.
	ErrShopUserIsNotConstructed = errors.New("ShopUser must be created via NewShopUser constructor")
)

// ShopUser represents a merchandiser ordering for a shop. The userID field
// references the account in the external user directory; orders reference
// the ShopUser, not the account.
type ShopUser struct {
	id       kernel.UUID
	userID   kernel.UUID
	name     string
	shopName string

	guard kernel.ConstructorGuard
}

// NewShopUser creates a new ShopUser with validation.
func NewShopUser(id kernel.UUID, userID kernel.UUID, name string, shopName string) (*ShopUser, error) {
	shopUser := &ShopUser{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		shopUser.setID(id),
		shopUser.setUserID(userID),
		shopUser.setName(name),
		shopUser.setShopName(shopName),
	); err != nil {
		return nil, err
	}

	return shopUser, nil
}

// Validate ensures the ShopUser instance was properly constructed through NewShopUser.
func (s *ShopUser) Validate() error {
	if s == nil {
		return ErrShopUserIsNotConstructed
	}
	return s.guard.Validate(ErrShopUserIsNotConstructed)
}

// IsEqual compares two shop users by their unique identifiers.
func (s *ShopUser) IsEqual(other *ShopUser) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shop user's unique identifier.
func (s *ShopUser) ID() kernel.UUID {
	return s.id
}

// UserID returns the identifier of the account in the external user directory.
func (s *ShopUser) UserID() kernel.UUID {
	return s.userID
}

// Name returns the shop user's display name.
func (s *ShopUser) Name() string {
	return s.name
}

// ShopName returns the name of the shop this user orders for.
func (s *ShopUser) ShopName() string {
	return s.shopName
}

func (s *ShopUser) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *ShopUser) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	s.userID = userID
	return nil
}

func (s *ShopUser) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *ShopUser) setShopName(shopName string) error {
	// A shop user may exist before being attached to a shop.
	s.shopName = shopName
	return nil
}
