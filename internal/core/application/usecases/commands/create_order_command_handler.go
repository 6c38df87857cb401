package commands

import (
	"context"
	"fmt"
	"time"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/core/domain/model/order"
	"shoporders/internal/core/domain/model/outbox"
	"shoporders/internal/core/domain/services"
	"shoporders/internal/pkg/errs"
)

// DefaultShippingOffset is how far in the future shipping is scheduled when
// the caller does not request a date.
const DefaultShippingOffset = 3 * 24 * time.Hour

// CreateOrderCommandHandler handles the business logic for order placement.
// Verifies the owning user, resolves each cart item against the catalog to
// snapshot unit prices, persists the order, and queues the admin and customer
// notifications in the outbox. All of it happens in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, composer, "admin@shop.example")
//	item, _ := NewCartItem(productID, 2)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), userID, nil, 25.0, "jane@example.com", []CartItem{item})
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is persisted and its notifications await dispatch
type CreateOrderCommandHandler struct {
	uowFactory        PlaceOrderUoWFactory
	composer          services.OrderNotificationComposer
	adminEmail        string
	requireTotalMatch bool
	now               func() time.Time
}

// CreateOrderOption customizes handler behavior.
type CreateOrderOption func(*CreateOrderCommandHandler)

// RequireTotalMatch makes the handler reject orders whose declared total does
// not match the sum of the computed line totals.
func RequireTotalMatch() CreateOrderOption {
	return func(h *CreateOrderCommandHandler) {
		h.requireTotalMatch = true
	}
}

// WithClock overrides the time source, used by tests for deterministic dates.
func WithClock(now func() time.Time) CreateOrderOption {
	return func(h *CreateOrderCommandHandler) {
		h.now = now
	}
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a PlaceOrderUoWFactory for transactional persistence, a notification
// composer, and the admin address that receives new-order notifications.
func NewCreateOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	composer services.OrderNotificationComposer,
	adminEmail string,
	opts ...CreateOrderOption,
) CreateOrderCommandHandler {
	handler := CreateOrderCommandHandler{
		uowFactory: uowFactory,
		composer:   composer,
		adminEmail: adminEmail,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle processes the order placement command.
//
// The shipping date defaults to three days after placement when the command
// does not carry one. Each cart item becomes an order line with the product's
// current price snapshotted in. The order, its lines, and both queued
// notifications are committed atomically; any failure rolls everything back.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orderDate := h.now()
	shippingDate := orderDate.Add(DefaultShippingOffset)
	if cmd.ShippingDate() != nil {
		shippingDate = *cmd.ShippingDate()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return nil, err
	}

	lines, err := h.buildLines(ctx, uow, cmd.Items())
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), orderDate, shippingDate,
		cmd.TotalAmount(), cmd.Email(), lines,
	)
	if err != nil {
		return nil, err
	}

	if h.requireTotalMatch && !amountsEqual(placed.TotalAmount(), placed.LineTotalSum()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total amount",
			fmt.Errorf("declared total %.2f does not match line total %.2f",
				placed.TotalAmount(), placed.LineTotalSum()))
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = h.queueNotifications(ctx, uow, placed, orderDate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// buildLines resolves every cart item against the catalog, snapshotting the
// current unit price into a new order line.
func (h *CreateOrderCommandHandler) buildLines(
	ctx context.Context, uow PlaceOrderUoW, items []CartItem,
) ([]*order.Line, error) {
	products := uow.ProductRepository()

	lines := make([]*order.Line, 0, len(items))
	for _, item := range items {
		catalogProduct, err := products.Get(ctx, item.ProductID())
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(catalogProduct.ID(), item.Quantity(), catalogProduct.Price())
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// queueNotifications writes the admin and customer emails to the outbox so
// they commit together with the order.
func (h *CreateOrderCommandHandler) queueNotifications(
	ctx context.Context, uow PlaceOrderUoW, placed *order.Order, queuedAt time.Time,
) error {
	notifications := uow.NotificationOutbox()

	adminSubject, adminBody := h.composer.ComposeAdmin(placed)
	adminMessage, err := outbox.NewMessage(kernel.NewUUID(), h.adminEmail, adminSubject, adminBody, queuedAt)
	if err != nil {
		return err
	}
	if err = notifications.Add(ctx, adminMessage); err != nil {
		return err
	}

	customerSubject, customerBody := h.composer.ComposeCustomer(placed)
	customerMessage, err := outbox.NewMessage(
		kernel.NewUUID(), placed.Email(), customerSubject, customerBody, queuedAt)
	if err != nil {
		return err
	}

	return notifications.Add(ctx, customerMessage)
}

// amountsEqual compares money amounts with a half-cent tolerance, enough to
// absorb float accumulation across line totals.
func amountsEqual(a, b float64) bool {
	const tolerance = 0.005
	diff := a - b
	return diff < tolerance && diff > -tolerance
}
