package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"luxe-be/internal/cart"
)

func TestSubtotal(t *testing.T) {
	t.Run("Success - Sums price times quantity", func(t *testing.T) {
		items := []cart.Item{
			{ProductID: 1, Name: "A", Price: 10.50, Quantity: 2},
			{ProductID: 2, Name: "B", Price: 5.25, Quantity: 3},
		}

		assert.Equal(t, 36.75, Subtotal(items).InexactFloat64())
	})

	t.Run("Success - Empty cart is zero", func(t *testing.T) {
		assert.True(t, Subtotal(nil).IsZero())
	})
}

func TestCalculate(t *testing.T) {
	t.Run("Success - Free shipping above threshold", func(t *testing.T) {
		items := []cart.Item{{ProductID: 1, Name: "Watch", Price: 300, Quantity: 2}}

		quote, applied := Calculate(items, "")

		assert.Nil(t, applied)
		assert.Equal(t, 600.0, quote.Subtotal)
		assert.Equal(t, 60.0, quote.Tax)
		assert.Equal(t, 0.0, quote.Shipping)
		assert.Equal(t, 0.0, quote.Discount)
		assert.Equal(t, 660.0, quote.Total)
	})

	t.Run("Success - Flat shipping at threshold", func(t *testing.T) {
		items := []cart.Item{{ProductID: 1, Name: "Bag", Price: 500, Quantity: 1}}

		quote, _ := Calculate(items, "")

		// 500 is not strictly above the threshold, so shipping applies.
		assert.Equal(t, 15.0, quote.Shipping)
		assert.Equal(t, 565.0, quote.Total)
	})

	t.Run("Success - Percentage coupon applied", func(t *testing.T) {
		items := []cart.Item{{ProductID: 1, Name: "Shoes", Price: 100, Quantity: 1}}

		quote, applied := Calculate(items, "SAVE20")

		assert.NotNil(t, applied)
		assert.True(t, applied.Valid)
		assert.Equal(t, 100.0, quote.Subtotal)
		assert.Equal(t, 10.0, quote.Tax)
		assert.Equal(t, 15.0, quote.Shipping)
		assert.Equal(t, 20.0, quote.Discount)
		assert.Equal(t, 105.0, quote.Total)
	})

	t.Run("Success - Lowercase coupon code accepted", func(t *testing.T) {
		items := []cart.Item{{ProductID: 1, Name: "Shoes", Price: 100, Quantity: 1}}

		quote, applied := Calculate(items, "save20")

		assert.NotNil(t, applied)
		assert.Equal(t, 20.0, quote.Discount)
	})

	t.Run("Success - Ineligible coupon contributes nothing", func(t *testing.T) {
		items := []cart.Item{{ProductID: 1, Name: "Socks", Price: 30, Quantity: 1}}

		quote, applied := Calculate(items, "WELCOME10")

		assert.Nil(t, applied)
		assert.Equal(t, 0.0, quote.Discount)
		assert.Equal(t, 48.0, quote.Total)
	})

	t.Run("Success - Unknown coupon contributes nothing", func(t *testing.T) {
		items := []cart.Item{{ProductID: 1, Name: "Socks", Price: 30, Quantity: 1}}

		quote, applied := Calculate(items, "BOGUS")

		assert.Nil(t, applied)
		assert.Equal(t, 0.0, quote.Discount)
	})

	t.Run("Success - FREESHIP validates but does not waive shipping", func(t *testing.T) {
		items := []cart.Item{{ProductID: 1, Name: "Socks", Price: 30, Quantity: 1}}

		quote, applied := Calculate(items, "FREESHIP")

		assert.NotNil(t, applied)
		assert.Equal(t, 15.0, quote.Shipping)
		assert.Equal(t, 0.0, quote.Discount)
	})

	t.Run("Success - Rounding to two places", func(t *testing.T) {
		items := []cart.Item{{ProductID: 1, Name: "Pen", Price: 19.99, Quantity: 3}}

		quote, _ := Calculate(items, "")

		assert.Equal(t, 59.97, quote.Subtotal)
		assert.Equal(t, 6.0, quote.Tax)
		assert.Equal(t, 80.97, quote.Total)
	})
}
