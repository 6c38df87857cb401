package kernel

import (
	"fmt"

	"shoporders/internal/pkg/errs"
	"shoporders/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly initialized Price.
// Prices must be created using the NewPrice constructor to ensure validity.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice constructor")

// Price represents a non-negative monetary amount, such as a product's unit price
// or an order total. Price is an immutable value object; the zero value is invalid
// and will fail validation - use NewPrice to create instances.
//
// Example:
//
//	price, err := kernel.NewPrice(19.99)
//	if err != nil {
//	    // Handle validation error
//	}
//	lineTotal := price.Mul(3) // 59.97
type Price struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewPrice creates a new Price with the specified amount.
// The amount must not be negative; zero is allowed for free items.
func NewPrice(amount float64) (Price, error) {
	if amount < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", amount))
	}

	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the monetary amount.
func (p Price) Amount() float64 {
	return p.amount
}

// Mul returns the amount multiplied by a quantity.
// Used to compute a line total from a unit price snapshot.
func (p Price) Mul(quantity int) float64 {
	return p.amount * float64(quantity)
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// Validate checks if the Price was properly constructed using the constructor.
// Returns ErrPriceIsNotConstructed for zero-value instances.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
