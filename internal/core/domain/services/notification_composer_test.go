package services_test

import (
	"testing"
	"time"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/core/domain/model/order"
	"shoporders/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedOrder(t *testing.T) *order.Order {
	t.Helper()

	priceA, _ := kernel.NewPrice(10.0)
	priceB, _ := kernel.NewPrice(5.0)
	lineA, err := order.NewLine(kernel.NewUUID(), 2, priceA)
	require.NoError(t, err)
	lineB, err := order.NewLine(kernel.NewUUID(), 1, priceB)
	require.NoError(t, err)

	orderDate := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), orderDate,
		orderDate.AddDate(0, 0, 3), 25.0, "jane@example.com", []*order.Line{lineA, lineB})
	require.NoError(t, err)
	return o
}

func TestOrderNotificationComposer_ComposeAdmin(t *testing.T) {
	composer := services.NewOrderNotificationComposer()
	o := placedOrder(t)

	subject, body := composer.ComposeAdmin(o)

	assert.Contains(t, subject, "confirm")
	assert.Contains(t, body, o.ID().String())
	assert.Contains(t, body, o.UserID().String())
	assert.Contains(t, body, "jane@example.com")
	assert.Contains(t, body, "2026-08-23")
	assert.Contains(t, body, "x2 @ 10.00 = 20.00")
	assert.Contains(t, body, "x1 @ 5.00 = 5.00")
	assert.Contains(t, body, "Declared total: 25.00")
}

func TestOrderNotificationComposer_ComposeCustomer(t *testing.T) {
	composer := services.NewOrderNotificationComposer()
	o := placedOrder(t)

	subject, body := composer.ComposeCustomer(o)

	assert.Contains(t, subject, "order has been placed")
	assert.Contains(t, body, o.ID().String())
	assert.NotContains(t, body, o.UserID().String())
	assert.Contains(t, body, "Total: 25.00")
	assert.Contains(t, body, "2026-08-23")
}

func TestOrderNotificationComposer_EveryLineAppears(t *testing.T) {
	composer := services.NewOrderNotificationComposer()
	o := placedOrder(t)

	_, body := composer.ComposeAdmin(o)

	for _, line := range o.Lines() {
		assert.Contains(t, body, line.ProductID().String())
	}
}
