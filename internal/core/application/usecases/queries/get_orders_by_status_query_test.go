package queries_test

import (
	"testing"

	"shoporders/internal/core/application/usecases/queries"
	"shoporders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByStatusQuery(t *testing.T) {
	query, err := queries.NewGetOrdersByStatusQuery(order.Shipping)
	require.NoError(t, err)
	assert.Equal(t, order.Shipping, query.Status())
	require.NoError(t, query.Validate())
}

func TestNewGetOrdersByStatusQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)
	require.Error(t, err)
}

func TestStatusQueryConstructors(t *testing.T) {
	tests := []struct {
		name     string
		create   func() (queries.GetOrdersByStatusQuery, error)
		expected order.Status
	}{
		{"pending", queries.NewGetPendingOrdersQuery, order.Pending},
		{"shipping", queries.NewGetShippingOrdersQuery, order.Shipping},
		{"delivered", queries.NewGetDeliveredOrdersQuery, order.Delivered},
		{"cancelled", queries.NewGetCancelledOrdersQuery, order.Cancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := tt.create()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, query.Status())
		})
	}
}

func TestGetOrdersByStatusQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetOrdersByStatusQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrdersByStatusQueryIsNotConstructed)
}
