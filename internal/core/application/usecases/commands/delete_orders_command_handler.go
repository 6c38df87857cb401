package commands

import (
	"context"
	"errors"

	"shoporders/internal/pkg/errs"
)

// DeleteOrdersCommandHandler handles batch order deletion.
// Each requested id is looked up first; ids with no matching order are skipped
// without failing the batch. All deletions happen in a single transaction.
//
// Example:
//
//	handler := NewDeleteOrdersCommandHandler(uowFactory)
//	cmd, _ := NewDeleteOrdersCommand([]kernel.UUID{firstID, secondID})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("deletion failed: %w", err)
//	}
type DeleteOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrdersCommandHandler creates a handler for batch deletion.
func NewDeleteOrdersCommandHandler(uowFactory OrderUoWFactory) DeleteOrdersCommandHandler {
	return DeleteOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Missing orders are skipped silently; any other error aborts and rolls back
// the whole batch.
func (h *DeleteOrdersCommandHandler) Handle(ctx context.Context, cmd DeleteOrdersCommand) error {
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
	for _, id := range cmd.OrderIDs() {
		if _, err := orderRepo.Get(ctx, id); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return err
		}

		if err := orderRepo.Delete(ctx, id); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
