package cart_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuantity(t *testing.T, value string) kernel.Quantity {
	t.Helper()
	quantity, err := kernel.QuantityFromString(value)
	require.NoError(t, err)
	return quantity
}

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	money, err := kernel.MoneyFromString(value)
	require.NoError(t, err)
	return money
}

func oilLine(t *testing.T, quantity string) cart.Line {
	t.Helper()
	line, err := cart.NewLine(
		kernel.NewUUID(), "Sunflower oil 1L", false,
		mustMoney(t, "79.90"), mustQuantity(t, quantity),
	)
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("ValidLine", func(t *testing.T) {
		productID := kernel.NewUUID()
		line, err := cart.NewLine(
			productID, "Pork shoulder", true,
			mustMoney(t, "350.00"), mustQuantity(t, "1.82"),
		)
		require.NoError(t, err)

		assert.True(t, line.ProductID().IsEqual(productID))
		assert.Equal(t, "Pork shoulder", line.ProductName())
		assert.True(t, line.IsWeightType())
		assert.Equal(t, "350.00", line.Price().String())
		assert.Equal(t, "1.82", line.Quantity().String())
		assert.Equal(t, "637.00", line.TotalPrice().String())
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := cart.NewLine(
			kernel.NewUUID(), "", false,
			mustMoney(t, "79.90"), mustQuantity(t, "1.00"),
		)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		_, err := cart.NewLine(
			kernel.NewUUID(), "Sunflower oil 1L", false,
			mustMoney(t, "79.90"), mustQuantity(t, "0.00"),
		)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("NotConstructed", func(t *testing.T) {
		var line cart.Line
		assert.ErrorIs(t, line.Validate(), cart.ErrLineIsNotConstructed)
	})
}

func TestCart_Add(t *testing.T) {
	t.Run("NewProduct", func(t *testing.T) {
		userCart, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		require.True(t, userCart.IsEmpty())

		require.NoError(t, userCart.Add(oilLine(t, "2.00")))

		assert.Equal(t, 1, userCart.Len())
		assert.Equal(t, "159.80", userCart.TotalPrice().String())
	})

	t.Run("SameProductMergesQuantities", func(t *testing.T) {
		userCart, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		line := oilLine(t, "2.00")
		require.NoError(t, userCart.Add(line))

		more, err := cart.NewLine(
			line.ProductID(), line.ProductName(), line.IsWeightType(),
			mustMoney(t, "84.50"), mustQuantity(t, "3.00"),
		)
		require.NoError(t, err)
		require.NoError(t, userCart.Add(more))

		require.Equal(t, 1, userCart.Len())
		merged := userCart.Lines()[0]
		assert.Equal(t, "5.00", merged.Quantity().String())
		// First price snapshot wins.
		assert.Equal(t, "79.90", merged.Price().String())
	})

	t.Run("NotConstructedLine", func(t *testing.T) {
		userCart, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		assert.ErrorIs(t, userCart.Add(cart.Line{}), cart.ErrLineIsNotConstructed)
	})
}

func TestCart_Remove(t *testing.T) {
	t.Run("ExistingProduct", func(t *testing.T) {
		userCart, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		line := oilLine(t, "2.00")
		require.NoError(t, userCart.Add(line))

		require.NoError(t, userCart.Remove(line.ProductID()))
		assert.True(t, userCart.IsEmpty())
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		userCart, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, userCart.Add(oilLine(t, "2.00")))

		err = userCart.Remove(kernel.NewUUID())
		assert.ErrorIs(t, err, cart.ErrLineNotFound)
		assert.Equal(t, 1, userCart.Len())
	})
}

func TestCart_TotalPrice(t *testing.T) {
	userCart, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)

	require.NoError(t, userCart.Add(oilLine(t, "2.00")))

	pork, err := cart.NewLine(
		kernel.NewUUID(), "Pork shoulder", true,
		mustMoney(t, "350.00"), mustQuantity(t, "1.82"),
	)
	require.NoError(t, err)
	require.NoError(t, userCart.Add(pork))

	// 79.90*2.00 + 350.00*1.82 = 159.80 + 637.00
	assert.Equal(t, "796.80", userCart.TotalPrice().String())
}

func TestRestoreCart(t *testing.T) {
	t.Run("RestoresLines", func(t *testing.T) {
		shopUserID := kernel.NewUUID()
		lines := []cart.Line{oilLine(t, "2.00"), oilLine(t, "1.00")}

		restored, err := cart.RestoreCart(shopUserID, lines)
		require.NoError(t, err)

		assert.True(t, restored.ShopUserID().IsEqual(shopUserID))
		assert.Equal(t, 2, restored.Len())
	})

	t.Run("RejectsNotConstructedLine", func(t *testing.T) {
		_, err := cart.RestoreCart(kernel.NewUUID(), []cart.Line{{}})
		assert.ErrorIs(t, err, cart.ErrLineIsNotConstructed)
	})
}
