package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for checkout.
// Resolves the shop user, converts the stored cart into a new order and
// clears the cart, all within a single transaction.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
// Fails with errs.ErrObjectNotFound when the shop user profile is missing
// and with order.ErrCartIsEmpty when there is nothing to check out.
// The cart is cleared in the same transaction that persists the order, so
// a failed checkout leaves the cart intact.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	aggregate, err := order.NewOrder(cmd.OrderID(), shopUser.ID(), userCart.Lines(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = cartRepo.Clear(ctx, shopUser.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
