package services

import (
	"fmt"
	"strings"

	"shoporders/internal/core/domain/model/order"
)

// OrderNotificationComposer renders the email notifications produced when an
// order is placed: an admin-facing summary asking for confirmation and a
// customer-facing confirmation. It is a stateless domain service; the actual
// sending happens elsewhere, decoupled through the notification outbox.
type OrderNotificationComposer struct{}

// NewOrderNotificationComposer creates a composer for order notifications.
func NewOrderNotificationComposer() OrderNotificationComposer {
	return OrderNotificationComposer{}
}

// ComposeAdmin renders the notification sent to the shop administrator.
func (OrderNotificationComposer) ComposeAdmin(o *order.Order) (subject, body string) {
	subject = "New order received | Please confirm the order"

	var b strings.Builder
	fmt.Fprintf(&b, "A new order has been placed.\n\n")
	fmt.Fprintf(&b, "Order:         %s\n", o.ID())
	fmt.Fprintf(&b, "Customer:      %s\n", o.UserID())
	fmt.Fprintf(&b, "Contact email: %s\n", o.Email())
	fmt.Fprintf(&b, "Order date:    %s\n", o.OrderDate().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Shipping date: %s\n", o.ShippingDate().Format("2006-01-02"))
	writeLines(&b, o)
	fmt.Fprintf(&b, "\nDeclared total: %.2f\n", o.TotalAmount())
	return subject, b.String()
}

// ComposeCustomer renders the confirmation sent to the order's contact address.
func (OrderNotificationComposer) ComposeCustomer(o *order.Order) (subject, body string) {
	subject = "Congratulations! Your order has been placed and is being processed"

	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your order!\n\n")
	fmt.Fprintf(&b, "Order:         %s\n", o.ID())
	fmt.Fprintf(&b, "Order date:    %s\n", o.OrderDate().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Shipping date: %s\n", o.ShippingDate().Format("2006-01-02"))
	writeLines(&b, o)
	fmt.Fprintf(&b, "\nTotal: %.2f\n", o.TotalAmount())
	fmt.Fprintf(&b, "\nWe will let you know as soon as your order ships.\n")
	return subject, b.String()
}

func writeLines(b *strings.Builder, o *order.Order) {
	fmt.Fprintf(b, "\nItems:\n")
	for _, line := range o.Lines() {
		fmt.Fprintf(b, "  - product %s  x%d @ %.2f = %.2f\n",
			line.ProductID(), line.Quantity(), line.UnitPrice().Amount(), line.TotalAmount())
	}
}
