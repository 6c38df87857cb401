package order

import (
	"errors"
	"fmt"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created through
// the NewLine or RestoreLine factory methods.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is an entity owned by an Order representing a single cart entry.
// It references a product, a positive quantity, and snapshots the product's
// unit price at creation time. The line total is computed once as
// unit price multiplied by quantity and never recomputed, even if the product's
// price changes later.
type Line struct {
	// productID references the purchased product
	productID kernel.UUID

	// quantity is the number of units ordered (must be positive)
	quantity int

	// unitPrice is the product price snapshotted at order creation
	unitPrice kernel.Price

	// totalAmount is unitPrice multiplied by quantity, fixed at creation
	totalAmount float64

	// isConstructed ensures the line was created via a factory method
	isConstructed bool
}

// NewLine creates a new order line for the given product and quantity,
// snapshotting the supplied unit price and precomputing the line total.
//
// Returns a validation error if the product reference, quantity, or price
// is invalid.
func NewLine(productID kernel.UUID, quantity int, unitPrice kernel.Price) (*Line, error) {
	line := &Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	line.totalAmount = unitPrice.Mul(quantity)
	return line, nil
}

// RestoreLine reconstructs a line from persistence, including its stored total.
// The stored total is taken as-is: it reflects the price at the time the order
// was placed and must not be recomputed from the current product price.
func RestoreLine(productID kernel.UUID, quantity int, unitPrice kernel.Price, totalAmount float64) (*Line, error) {
	line, err := NewLine(productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	line.totalAmount = totalAmount
	return line, nil
}

// Validate ensures the Line instance was properly constructed through a factory method.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}

	return nil
}

// ProductID returns the referenced product's identifier.
func (l *Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the number of units ordered.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot taken at order creation.
func (l *Line) UnitPrice() kernel.Price {
	return l.unitPrice
}

// TotalAmount returns the precomputed line total (unit price x quantity).
func (l *Line) TotalAmount() float64 {
	return l.totalAmount
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}
