package commands

import (
	"errors"
	"time"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/pkg/errs"
	"shoporders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCartItemIsNotConstructed = errors.New(
		"CartItem must be created via NewCartItem constructor",
	)
	ErrCartIsEmpty = errors.New("cart must contain at least one item")
)

// CartItem is a single entry of the cart being turned into an order:
// a product reference and the number of units to buy. Prices are not part of
// the item; the handler snapshots them from the catalog.
type CartItem struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewCartItem creates a cart item for the given product and quantity.
// Validates that the product reference is valid and the quantity is positive.
func NewCartItem(productID kernel.UUID, quantity int) (CartItem, error) {
	item := CartItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return CartItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i CartItem) Validate() error {
	return i.guard.Validate(ErrCartItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (i CartItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units to buy.
func (i CartItem) Quantity() int {
	return i.quantity
}

func (i *CartItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	i.productID = productID
	return nil
}

func (i *CartItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	i.quantity = quantity
	return nil
}

// CreateOrderCommand represents a request to place a new order from a cart.
// Encapsulates the owning user, the cart items, the declared cart total, the
// contact email, and an optional requested shipping date. When no shipping
// date is given the handler defaults it to three days after placement.
//
// Example:
//
//	item, _ := NewCartItem(productID, 2)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), userID, nil, 25.0, "jane@example.com", []CartItem{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, composer, adminEmail)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed", placed.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	userID       kernel.UUID
	shippingDate *time.Time
	totalAmount  float64
	email        string
	items        []CartItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the contact email, the declared total, and that the
// cart holds at least one valid item. A nil shippingDate means "use the default".
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	shippingDate *time.Time,
	totalAmount float64,
	email string,
	items []CartItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setShippingDate(shippingDate),
		orderCommand.setTotalAmount(totalAmount),
		orderCommand.setEmail(email),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the user placing the order.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ShippingDate returns the requested shipping date, or nil to use the default.
func (c CreateOrderCommand) ShippingDate() *time.Time {
	return c.shippingDate
}

// TotalAmount returns the declared cart total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// Email returns the contact address for order notifications.
func (c CreateOrderCommand) Email() string {
	return c.email
}

// Items returns the cart items.
func (c CreateOrderCommand) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setShippingDate(shippingDate *time.Time) error {
	if shippingDate != nil && shippingDate.IsZero() {
		return errs.NewValueIsInvalidError("shipping date")
	}

	c.shippingDate = shippingDate
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidError("total amount")
	}

	c.totalAmount = totalAmount
	return nil
}

func (c *CreateOrderCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *CreateOrderCommand) setItems(items []CartItem) error {
	if len(items) == 0 {
		return ErrCartIsEmpty
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
