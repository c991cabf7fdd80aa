package commands

import (
	"context"
	"time"
)

// BulkPlaceContainerResult reports which lines the bulk placement touched.
// AlreadyAssembled lists product names that needed no placement; Skipped
// lists unpacked product names that were deliberately left alone.
type BulkPlaceContainerResult struct {
	AlreadyAssembled []string
	Skipped          []string
}

// BulkPlaceContainerCommandHandler handles whole-order container placement.
type BulkPlaceContainerCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBulkPlaceContainerCommandHandler creates a handler for whole-order placement.
func NewBulkPlaceContainerCommandHandler(uowFactory OrderUoWFactory) BulkPlaceContainerCommandHandler {
	return BulkPlaceContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk placement command and reports the complete and
// skipped lines for caller-side messaging.
func (h BulkPlaceContainerCommandHandler) Handle(
	ctx context.Context,
	cmd BulkPlaceContainerCommand,
) (BulkPlaceContainerResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkPlaceContainerResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BulkPlaceContainerResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return BulkPlaceContainerResult{}, err
	}

	assembled, skipped, err := aggregate.ApplyContainerToAllItems(cmd.Number(), time.Now())
	if err != nil {
		return BulkPlaceContainerResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return BulkPlaceContainerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return BulkPlaceContainerResult{}, err
	}

	return BulkPlaceContainerResult{
		AlreadyAssembled: assembled,
		Skipped:          skipped,
	}, nil
}
