package order_test

import (
	"testing"

	"shoporders/internal/core/domain/model/order"
	"shoporders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Shipping, order.Delivered, order.Cancelled} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range values fail", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(99), order.Status(-1)} {
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "SHIPPING", order.Shipping.String())
	assert.Equal(t, "DELIVERED", order.Delivered.String())
	assert.Equal(t, "CANCELLED", order.Cancelled.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses persisted names", func(t *testing.T) {
		cases := map[string]order.Status{
			"PENDING":   order.Pending,
			"SHIPPING":  order.Shipping,
			"DELIVERED": order.Delivered,
			"CANCELLED": order.Cancelled,
		}
		for s, want := range cases {
			got, err := order.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects free-form labels", func(t *testing.T) {
		for _, s := range []string{"", "pending", "SHIPPED", "whatever"} {
			_, err := order.StatusFromString(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	allowed := []struct{ from, to order.Status }{
		{order.Pending, order.Shipping},
		{order.Pending, order.Cancelled},
		{order.Shipping, order.Delivered},
		{order.Shipping, order.Cancelled},
	}
	for _, tc := range allowed {
		t.Run(tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			next, err := tc.from.TransitionTo(tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
		})
	}

	forbidden := []struct{ from, to order.Status }{
		{order.Pending, order.Delivered},
		{order.Pending, order.Pending},
		{order.Shipping, order.Pending},
		{order.Shipping, order.Shipping},
		{order.Delivered, order.Shipping},
		{order.Delivered, order.Cancelled},
		{order.Cancelled, order.Pending},
		{order.Cancelled, order.Shipping},
		{order.Cancelled, order.Delivered},
	}
	for _, tc := range forbidden {
		t.Run(tc.from.String()+"_to_"+tc.to.String()+"_forbidden", func(t *testing.T) {
			_, err := tc.from.TransitionTo(tc.to)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is not allowed")
		})
	}

	t.Run("invalid target status fails", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Shipping.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Unknown.IsTerminal())
}
