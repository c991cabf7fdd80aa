package shopuser_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shopuser"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShopUser(t *testing.T) {
	t.Run("ValidShopUser", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()

		shopUser, err := shopuser.NewShopUser(id, userID, "Packer One", "Main Street Grocery")
		require.NoError(t, err)

		assert.True(t, shopUser.ID().IsEqual(id))
		assert.True(t, shopUser.UserID().IsEqual(userID))
		assert.Equal(t, "Packer One", shopUser.Name())
		assert.Equal(t, "Main Street Grocery", shopUser.ShopName())
		assert.NoError(t, shopUser.Validate())
	})

	t.Run("EmptyShopNameIsAllowed", func(t *testing.T) {
		shopUser, err := shopuser.NewShopUser(kernel.NewUUID(), kernel.NewUUID(), "Packer One", "")
		require.NoError(t, err)
		assert.Empty(t, shopUser.ShopName())
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := shopuser.NewShopUser(kernel.NewUUID(), kernel.NewUUID(), "", "Main Street Grocery")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("InvalidIDs", func(t *testing.T) {
		_, err := shopuser.NewShopUser(kernel.UUID{}, kernel.NewUUID(), "Packer One", "Main Street Grocery")
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

		_, err = shopuser.NewShopUser(kernel.NewUUID(), kernel.UUID{}, "Packer One", "Main Street Grocery")
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("NotConstructed", func(t *testing.T) {
		var shopUser *shopuser.ShopUser
		assert.ErrorIs(t, shopUser.Validate(), shopuser.ErrShopUserIsNotConstructed)
	})
}

func TestShopUser_IsEqual(t *testing.T) {
	first, err := shopuser.NewShopUser(kernel.NewUUID(), kernel.NewUUID(), "Packer One", "Main Street Grocery")
	require.NoError(t, err)
	second, err := shopuser.NewShopUser(kernel.NewUUID(), kernel.NewUUID(), "Packer One", "Main Street Grocery")
	require.NoError(t, err)

	assert.True(t, first.IsEqual(first))
	assert.False(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(nil))
}
