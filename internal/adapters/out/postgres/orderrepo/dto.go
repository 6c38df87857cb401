// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by owner and status.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderDate    time.Time `gorm:"not null"`
	ShippingDate time.Time `gorm:"not null"`
	Status       int       `gorm:"index"`
	Active       bool
	TotalAmount  float64
	Email        string    `gorm:"type:varchar(255);not null"`
	Lines        []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents the database structure for persisting order lines.
// Links to the owning order via foreign key and stores the price snapshot
// taken at order creation.
type LineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity    int       `gorm:"type:int;not null"`
	UnitPrice   float64
	TotalAmount float64
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Line rows get fresh identifiers; lines are immutable so they are only ever
// written once, at order creation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ID:          uuid.New(),
			OrderID:     orderID,
			ProductID:   line.ProductID().Bytes(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().Amount(),
			TotalAmount: line.TotalAmount(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		UserID:       aggregate.UserID().Bytes(),
		OrderDate:    aggregate.OrderDate(),
		ShippingDate: aggregate.ShippingDate(),
		Status:       int(aggregate.Status()),
		Active:       aggregate.IsActive(),
		TotalAmount:  aggregate.TotalAmount(),
		Email:        aggregate.Email(),
		Lines:        lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its lines using RestoreOrder,
// keeping the stored price snapshots intact.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id, userID, dto.OrderDate, dto.ShippingDate,
		order.Status(dto.Status), dto.Active, dto.TotalAmount, dto.Email, lines,
	)
}

// lineToDomain converts a line DTO to a domain entity.
// Uses RestoreLine so the stored total is kept rather than recomputed.
func lineToDomain(dto LineDTO) (*order.Line, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewPrice(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(productID, dto.Quantity, unitPrice, dto.TotalAmount)
}
