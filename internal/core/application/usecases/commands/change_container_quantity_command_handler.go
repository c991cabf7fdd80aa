package commands

import (
	"context"
	"time"
)

// ChangeContainerQuantityCommandHandler handles container resizing.
// Reads the owning order with a row-level lock, as the overflow check must
// observe the latest placements of the same line.
type ChangeContainerQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeContainerQuantityCommandHandler creates a handler for container resizing.
func NewChangeContainerQuantityCommandHandler(uowFactory OrderUoWFactory) ChangeContainerQuantityCommandHandler {
	return ChangeContainerQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resize command.
// Fails with order.ErrContainerNotFound for unknown containers and
// order.ErrContainerOverflow when the new quantity would exceed the
// ordered amount of the owning line.
func (h ChangeContainerQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeContainerQuantityCommand) error {
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
	aggregate, err := orderRepo.GetByContainerIDForUpdate(ctx, cmd.ContainerID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeContainerQuantity(cmd.ContainerID(), cmd.Quantity(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
