package commands

import (
	"errors"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/pkg/guard"
)

var (
	ErrDeleteOrdersCommandIsNotConstructed = errors.New(
		"DeleteOrdersCommand must be created via NewDeleteOrdersCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// DeleteOrdersCommand represents a request to remove a batch of orders.
// Deletion is best-effort per id: ids that match no order are silently skipped.
type DeleteOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrdersCommand creates a command to delete the given orders.
// Validates that at least one valid order id is supplied.
func NewDeleteOrdersCommand(orderIDs []kernel.UUID) (DeleteOrdersCommand, error) {
	deleteCommand := DeleteOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setOrderIDs(orderIDs); err != nil {
		return DeleteOrdersCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrdersCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders to delete.
func (c DeleteOrdersCommand) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}

func (c *DeleteOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}
