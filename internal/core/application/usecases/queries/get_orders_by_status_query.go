package queries

import (
	"errors"

	"shoporders/internal/core/domain/model/order"
	"shoporders/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves every order currently in one lifecycle
// status. Dedicated constructors exist for each status the API exposes.
//
// Example:
//
//	query, _ := NewGetPendingOrdersQuery()
//	handler := NewGetOrdersByStatusQueryHandler(db)
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending orders: %w", err)
//	}
//	fmt.Printf("%d orders awaiting confirmation\n", len(pending))
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
// Validates that the status is a known lifecycle state.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetPendingOrdersQuery creates a query for orders awaiting confirmation.
func NewGetPendingOrdersQuery() (GetOrdersByStatusQuery, error) {
	return NewGetOrdersByStatusQuery(order.Pending)
}

// NewGetShippingOrdersQuery creates a query for orders on their way.
func NewGetShippingOrdersQuery() (GetOrdersByStatusQuery, error) {
	return NewGetOrdersByStatusQuery(order.Shipping)
}

// NewGetDeliveredOrdersQuery creates a query for completed orders.
func NewGetDeliveredOrdersQuery() (GetOrdersByStatusQuery, error) {
	return NewGetOrdersByStatusQuery(order.Delivered)
}

// NewGetCancelledOrdersQuery creates a query for cancelled orders.
func NewGetCancelledOrdersQuery() (GetOrdersByStatusQuery, error) {
	return NewGetOrdersByStatusQuery(order.Cancelled)
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to filter by.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}
