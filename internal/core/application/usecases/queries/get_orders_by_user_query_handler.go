package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByUserQueryHandler retrieves a user's orders from the database.
//
// Example:
//
//	handler := NewGetOrdersByUserQueryHandler(db)
//	query, _ := NewGetOrdersByUserQuery(userID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get user orders: %v", err)
//	    return err
//	}
type GetOrdersByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByUserQueryHandler creates a handler for user order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByUserQueryHandler(db *gorm.DB) GetOrdersByUserQueryHandler {
	return GetOrdersByUserQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice when the user has no
// orders; results are sorted by order ID for consistent output.
func (h GetOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByUserQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchOrders(ctx, h.db, "WHERE user_id = ?", query.UserID().Bytes())
}
