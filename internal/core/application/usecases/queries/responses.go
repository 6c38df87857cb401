// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read directly from the database,
// returning flat response structures shaped for presentation.
package queries

import (
	"context"
	"time"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderResponse represents a single order as returned by read operations.
type OrderResponse struct {
	ID           kernel.UUID
	UserID       kernel.UUID
	OrderDate    time.Time
	ShippingDate time.Time
	Status       string
	Active       bool
	TotalAmount  float64
	Email        string
	Lines        []LineResponse
}

// LineResponse represents one order line with its price snapshot.
type LineResponse struct {
	ProductID   kernel.UUID
	Quantity    int
	UnitPrice   float64
	TotalAmount float64
}

const selectOrdersSQL = `
	SELECT
		id,
		user_id,
		order_date,
		shipping_date,
		status,
		active,
		total_amount,
		email
	FROM orders
`

// fetchOrders runs the shared order projection with the given WHERE clause and
// loads the lines of every returned order. Results are sorted by order ID for
// consistent output.
func fetchOrders(
	ctx context.Context, db *gorm.DB, whereClause string, args ...any,
) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)
	rawIDs := make([]uuid.UUID, 0)

	rows, err := db.WithContext(ctx).
		Raw(selectOrdersSQL+whereClause+" ORDER BY id", args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp OrderResponse
		var id, userID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&userID,
			&orderResp.OrderDate,
			&orderResp.ShippingDate,
			&status,
			&orderResp.Active,
			&orderResp.TotalAmount,
			&orderResp.Email,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}

		orderResp.ID = orderID
		orderResp.UserID = ownerID
		orderResp.Status = order.Status(status).String()
		orderResp.Lines = make([]LineResponse, 0)

		orders = append(orders, orderResp)
		rawIDs = append(rawIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = loadLines(ctx, db, rawIDs, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// loadLines fetches the lines of the given orders in one query and attaches
// them to the matching responses.
func loadLines(ctx context.Context, db *gorm.DB, rawIDs []uuid.UUID, orders []OrderResponse) error {
	if len(rawIDs) == 0 {
		return nil
	}

	byID := make(map[kernel.UUID]int, len(orders))
	for i, o := range orders {
		byID[o.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			quantity,
			unit_price,
			total_amount
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY id
	`, rawIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var lineResp LineResponse
		var orderID, productID uuid.UUID

		err = rows.Scan(
			&orderID,
			&productID,
			&lineResp.Quantity,
			&lineResp.UnitPrice,
			&lineResp.TotalAmount,
		)
		if err != nil {
			return err
		}

		ownerID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		lineProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}
		lineResp.ProductID = lineProductID

		if i, ok := byID[ownerID]; ok {
			orders[i].Lines = append(orders[i].Lines, lineResp)
		}
	}

	return rows.Err()
}
