package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddProductToCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	shopUser := testShopUser(t, userID)

	catalogProduct, err := product.NewProduct(
		kernel.NewUUID(), "Pork shoulder", product.Weight, mustMoney(t, "350.00"),
	)
	require.NoError(t, err)

	userCart, err := cart.NewCart(shopUser.ID())
	require.NoError(t, err)

	cmd, err := commands.NewAddProductToCartCommand(userID, catalogProduct.ID(), mustQuantity(t, "1.82"))
	require.NoError(t, err)

	userRepo := new(MockShopUserRepository)
	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShopUserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUserID", ctx, userID).Return(shopUser, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, catalogProduct.ID()).Return(catalogProduct, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, shopUser.ID()).Return(userCart, nil).Once(),
		cartRepo.On("Save", ctx, userCart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddProductToCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// The line carries a full snapshot of the catalog product.
	require.Equal(t, 1, userCart.Len())
	line := userCart.Lines()[0]
	require.Equal(t, "Pork shoulder", line.ProductName())
	require.True(t, line.IsWeightType())
	require.Equal(t, "350.00", line.Price().String())
	require.Equal(t, "1.82", line.Quantity().String())
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddProductToCartCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddProductToCartCommand{} // not constructed properly
	factory := new(MockCartUoWFactory)
	h := commands.NewAddProductToCartCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

func TestRemoveProductFromCartCommandHandler_Handle_LineNotFound(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	shopUser := testShopUser(t, userID)

	userCart, err := cart.NewCart(shopUser.ID())
	require.NoError(t, err)

	cmd, err := commands.NewRemoveProductFromCartCommand(userID, kernel.NewUUID())
	require.NoError(t, err)

	userRepo := new(MockShopUserRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShopUserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUserID", ctx, userID).Return(shopUser, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, shopUser.ID()).Return(userCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveProductFromCartCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, cart.ErrLineNotFound)
	uow.AssertExpectations(t)
}
