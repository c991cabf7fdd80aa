package commands

import (
	"context"
)

// MarkItemPackedCommandHandler handles per-line packing confirmation.
type MarkItemPackedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkItemPackedCommandHandler creates a handler for packing confirmation.
func NewMarkItemPackedCommandHandler(uowFactory OrderUoWFactory) MarkItemPackedCommandHandler {
	return MarkItemPackedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the packing confirmation. Idempotent for already packed lines.
func (h MarkItemPackedCommandHandler) Handle(ctx context.Context, cmd MarkItemPackedCommand) error {
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

	if err = aggregate.MarkItemPacked(cmd.OrderItemID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
