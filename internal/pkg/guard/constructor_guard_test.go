package guard_test

import (
	"errors"
	"testing"

	"shoporders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		err := g.Validate(errors.New("not constructed"))

		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type CartItem struct {
		productID string
		quantity  int
		guard     guard.ConstructorGuard
	}

	var errCartItemNotConstructed = errors.New("CartItem must be created via NewCartItem")

	newCartItem := func(productID string, quantity int) (CartItem, error) {
		if productID == "" {
			return CartItem{}, errors.New("product id is required")
		}
		if quantity <= 0 {
			return CartItem{}, errors.New("quantity must be positive")
		}
		return CartItem{
			productID: productID,
			quantity:  quantity,
			guard:     guard.NewConstructorGuard(),
		}, nil
	}

	validateCartItem := func(i CartItem) error {
		return i.guard.Validate(errCartItemNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		item, err := newCartItem("prod-1", 2)

		require.NoError(t, err)
		require.NoError(t, validateCartItem(item))
		assert.Equal(t, "prod-1", item.productID)
		assert.Equal(t, 2, item.quantity)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var item CartItem // zero value

		err := validateCartItem(item)

		require.Error(t, err)
		assert.Equal(t, errCartItemNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newCartItem("", 2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product id is required")

		_, err = newCartItem("prod-1", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity must be positive")
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		guardCopy := g // pass by value

		require.NoError(t, g.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
