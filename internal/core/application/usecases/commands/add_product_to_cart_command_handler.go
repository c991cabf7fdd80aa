package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
)

// AddProductToCartCommandHandler handles cart additions.
// Snapshots the product name, unit type and current price into the cart
// line, so later catalog price changes do not affect the pending cart.
type AddProductToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddProductToCartCommandHandler creates a handler for cart additions.
func NewAddProductToCartCommandHandler(uowFactory CartUoWFactory) AddProductToCartCommandHandler {
	return AddProductToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
// Adding a product already present in the cart merges quantities and keeps
// the original price snapshot.
func (h AddProductToCartCommandHandler) Handle(ctx context.Context, cmd AddProductToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shopUser, err := uow.ShopUserRepository().GetByUserID(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	catalogProduct, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.Get(ctx, shopUser.ID())
	if err != nil {
		return err
	}

	line, err := cart.NewLine(
		catalogProduct.ID(),
		catalogProduct.Name(),
		catalogProduct.IsWeightType(),
		catalogProduct.Price(),
		cmd.Quantity(),
	)
	if err != nil {
		return err
	}

	if err = userCart.Add(line); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
