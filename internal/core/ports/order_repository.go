// Package ports defines the contracts between the application core and
// infrastructure adapters: repositories, the unit of work, and the outbound
// email transport. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its owned lines; lines are immutable after
// creation, so updates only touch the order's own columns.
type OrderRepository interface {
	// Add persists a new order aggregate together with its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only the order's mutable columns are written; status is the one field
	// that changes after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including all of its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order and its lines entirely. This is a hard delete;
	// the aggregate's active flag plays no part in it.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllByUserID retrieves every order owned by the given user,
	// regardless of status.
	GetAllByUserID(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// GetAllByStatus retrieves every order currently in the given status.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
