package commands

import (
	"context"
	"time"
)

// PlaceContainerCommandHandler handles container placement for one order line.
//
// The owning order is read with a row-level lock, so two placements racing
// for the same line serialize and the second one sees the first one's
// quantity when the overflow check runs.
type PlaceContainerCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceContainerCommandHandler creates a handler for container placement.
func NewPlaceContainerCommandHandler(uowFactory OrderUoWFactory) PlaceContainerCommandHandler {
	return PlaceContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the placement command.
// Fails with order.ErrItemNotPacked for unpacked lines,
// order.ErrContainerOverflow when the quantity exceeds what is missing, and
// order.ErrOrderAlreadyShipped for shipped orders.
func (h PlaceContainerCommandHandler) Handle(ctx context.Context, cmd PlaceContainerCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByOrderItemIDForUpdate(ctx, cmd.OrderItemID())
	if err != nil {
		return err
	}

	if err = aggregate.PlaceContainer(cmd.OrderItemID(), cmd.Number(), cmd.Quantity(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
