package commands

import (
	"context"
)

// RemoveProductFromCartCommandHandler handles cart line removal.
type RemoveProductFromCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveProductFromCartCommandHandler creates a handler for cart removals.
func NewRemoveProductFromCartCommandHandler(uowFactory CartUoWFactory) RemoveProductFromCartCommandHandler {
	return RemoveProductFromCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart removal command.
// Removing a product that is not in the cart fails with cart.ErrLineNotFound.
func (h RemoveProductFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveProductFromCartCommand) error {
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

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.Get(ctx, shopUser.ID())
	if err != nil {
		return err
	}

	if err = userCart.Remove(cmd.ProductID()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
