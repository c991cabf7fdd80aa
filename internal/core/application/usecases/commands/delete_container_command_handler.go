package commands

import (
	"context"
	"time"
)

// DeleteContainerCommandHandler handles container removal.
// An assembled order drops back to Processed when the removal reopens a gap.
type DeleteContainerCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteContainerCommandHandler creates a handler for container removal.
func NewDeleteContainerCommandHandler(uowFactory OrderUoWFactory) DeleteContainerCommandHandler {
	return DeleteContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the container removal command.
func (h DeleteContainerCommandHandler) Handle(ctx context.Context, cmd DeleteContainerCommand) error {
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

	if err = aggregate.RemoveContainer(cmd.ContainerID(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
