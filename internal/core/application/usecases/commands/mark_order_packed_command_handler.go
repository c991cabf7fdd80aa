package commands

import (
	"context"
)

// MarkOrderPackedCommandHandler handles whole-order packing confirmation.
type MarkOrderPackedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderPackedCommandHandler creates a handler for whole-order packing.
func NewMarkOrderPackedCommandHandler(uowFactory OrderUoWFactory) MarkOrderPackedCommandHandler {
	return MarkOrderPackedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the whole-order packing confirmation.
// Already packed lines are left as is.
func (h MarkOrderPackedCommandHandler) Handle(ctx context.Context, cmd MarkOrderPackedCommand) error {
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
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkAllItemsPacked(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
