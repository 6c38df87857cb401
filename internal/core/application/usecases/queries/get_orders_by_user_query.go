package queries

import (
	"errors"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/pkg/guard"
)

var ErrGetOrdersByUserQueryIsNotConstructed = errors.New(
	"GetOrdersByUserQuery must be created via NewGetOrdersByUserQuery constructor",
)

// GetOrdersByUserQuery retrieves every order owned by one user, regardless of
// status. A user with no orders yields an empty result, not an error.
//
// Example:
//
//	query, _ := NewGetOrdersByUserQuery(userID)
//	handler := NewGetOrdersByUserQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get user orders: %w", err)
//	}
//	fmt.Printf("User has %d orders\n", len(orders))
type GetOrdersByUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByUserQuery creates a query for one user's order history.
// Validates that the user ID is valid.
func NewGetOrdersByUserQuery(userID kernel.UUID) (GetOrdersByUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersByUserQuery{}, err
	}

	return GetOrdersByUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserQueryIsNotConstructed)
}

// UserID returns the identifier of the owning user.
func (q GetOrdersByUserQuery) UserID() kernel.UUID {
	return q.userID
}
