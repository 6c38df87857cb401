package order

import (
	"errors"
	"fmt"
	"time"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the storefront. It is the aggregate root
// that owns the order lines and manages the order lifecycle from placement
// through delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning user reference
//   - Shipping date must not be earlier than the order date's calendar day
//   - Every line references an existing product with a positive quantity
//   - Line totals are price snapshots taken at creation, never recomputed
//   - Status transitions follow the defined workflow (see Status)
//   - Can only be created through NewOrder or RestoreOrder
//
// The total amount is the caller-declared cart total; it is not derived from the
// line totals here (reconciliation is an application-layer concern).
//
// The active flag is set on creation and carried through persistence for
// compatibility with existing consumers; nothing filters on it.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the owning user (always present)
	userID kernel.UUID

	// orderDate is the placement timestamp
	orderDate time.Time

	// shippingDate is the requested delivery date
	shippingDate time.Time

	// status represents the current state in the order lifecycle
	status Status

	// active is a legacy compatibility flag, set true on creation
	active bool

	// totalAmount is the caller-declared order total
	totalAmount float64

	// email is the contact address for order notifications
	email string

	// lines are the cart entries owned by this order
	lines []*Line

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to place
// a valid order, ensuring all business invariants hold before persistence.
//
// The order starts in Pending status with the active flag set. The shipping
// date must fall on or after the order date's calendar day; earlier dates are
// rejected with a validation error before anything is persisted.
//
// Example:
//
//	lines := []*order.Line{line}
//	o, err := order.NewOrder(kernel.NewUUID(), userID, time.Now(), shippingDate, 25.0, "jane@example.com", lines)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	orderDate time.Time,
	shippingDate time.Time,
	totalAmount float64,
	email string,
	lines []*Line,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setOrderDate(orderDate),
		o.setShippingDate(shippingDate),
		o.setTotalAmount(totalAmount),
		o.setEmail(email),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
// Unlike NewOrder it accepts any stored status and active flag and does not
// re-apply the shipping-date rule: the rule was enforced when the order was
// placed and stored rows must load unchanged.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	orderDate time.Time,
	shippingDate time.Time,
	status Status,
	active bool,
	totalAmount float64,
	email string,
	lines []*Line,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		userID:        userID,
		orderDate:     orderDate,
		shippingDate:  shippingDate,
		status:        status,
		active:        active,
		totalAmount:   totalAmount,
		email:         email,
		lines:         lines,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// OrderDate returns the placement timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// ShippingDate returns the requested delivery date.
func (o *Order) ShippingDate() time.Time {
	return o.shippingDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsActive returns the legacy active flag.
func (o *Order) IsActive() bool {
	return o.active
}

// TotalAmount returns the caller-declared order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Email returns the contact address for order notifications.
func (o *Order) Email() string {
	return o.email
}

// Lines returns the order's cart entries.
// The returned slice is a copy; the lines themselves are shared.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// LineTotalSum returns the sum of all line totals.
// Used by the application layer to reconcile the declared total when configured to.
func (o *Order) LineTotalSum() float64 {
	var sum float64
	for _, line := range o.lines {
		sum += line.TotalAmount()
	}
	return sum
}

// ChangeStatus transitions the order to the given status.
//
// The transition is validated against the status workflow: Pending orders can
// move to Shipping or Cancelled, Shipping orders to Delivered or Cancelled,
// and Delivered and Cancelled orders cannot change at all.
//
// Returns an error if next is not a valid status or the transition is not allowed.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setUserID validates and sets the owning user reference.
// The owning user can never be absent.
func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = orderDate
	return nil
}

// setShippingDate enforces the calendar-day rule: shipping on the placement
// day is fine, anything earlier is not. Both values are read as civil dates
// in their own location, so a date parsed at UTC midnight and an order placed
// in another zone still compare by what the calendar says, not by instant.
func (o *Order) setShippingDate(shippingDate time.Time) error {
	if shippingDate.IsZero() {
		return errs.NewValueIsRequiredError("shipping date")
	}

	if !o.orderDate.IsZero() && calendarDayBefore(shippingDate, o.orderDate) {
		return errs.NewValueIsInvalidErrorWithCause("shipping date",
			fmt.Errorf("%s is earlier than the order date %s",
				shippingDate.Format("2006-01-02"), o.orderDate.Format("2006-01-02")))
	}

	o.shippingDate = shippingDate
	return nil
}

func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total amount",
			fmt.Errorf("%v is negative", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	o.email = email
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}

// calendarDayBefore reports whether t's calendar day precedes other's.
// Each value's (year, month, day) is taken in its own location.
func calendarDayBefore(t, other time.Time) bool {
	ty, tm, td := t.Date()
	oy, om, od := other.Date()
	if ty != oy {
		return ty < oy
	}
	if tm != om {
		return tm < om
	}
	return td < od
}
