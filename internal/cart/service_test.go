package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sessionID = "sess-1"

func item(productID int, name string, price float64, qty int) Item {
	return Item{ProductID: productID, Name: name, Price: price, Quantity: qty}
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - New item", func(t *testing.T) {
		svc := NewService(NewMemoryRepository())

		items, err := svc.AddItem(ctx, sessionID, item(1, "Leather Handbag", 299.99, 2))

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("Success - Merges quantity for existing product", func(t *testing.T) {
		svc := NewService(NewMemoryRepository())

		_, err := svc.AddItem(ctx, sessionID, item(1, "Leather Handbag", 299.99, 2))
		assert.NoError(t, err)

		items, err := svc.AddItem(ctx, sessionID, item(1, "Leather Handbag", 299.99, 3))

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("Success - Zero quantity defaults to one", func(t *testing.T) {
		svc := NewService(NewMemoryRepository())

		items, err := svc.AddItem(ctx, sessionID, item(1, "Silk Scarf", 79.99, 0))

		assert.NoError(t, err)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("Error - Missing fields", func(t *testing.T) {
		svc := NewService(NewMemoryRepository())

		_, err := svc.AddItem(ctx, sessionID, Item{ProductID: 1, Quantity: 1})

		assert.ErrorIs(t, err, ErrMissingFields)
	})
}

func TestService_GetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Empty cart", func(t *testing.T) {
		svc := NewService(NewMemoryRepository())

		c, err := svc.GetCart(ctx, sessionID)

		assert.NoError(t, err)
		assert.Empty(t, c.Items)
		assert.Equal(t, 0.0, c.Summary.Total)
		assert.Equal(t, 0, c.Summary.ItemCount)
	})

	t.Run("Success - Summary applies flat tax", func(t *testing.T) {
		svc := NewService(NewMemoryRepository())

		_, err := svc.AddItem(ctx, sessionID, item(1, "Leather Handbag", 100, 2))
		assert.NoError(t, err)
		_, err = svc.AddItem(ctx, sessionID, item(2, "Silk Scarf", 50, 1))
		assert.NoError(t, err)

		c, err := svc.GetCart(ctx, sessionID)

		assert.NoError(t, err)
		assert.Equal(t, 250.0, c.Summary.Subtotal)
		assert.Equal(t, 25.0, c.Summary.Tax)
		assert.Equal(t, 275.0, c.Summary.Total)
		assert.Equal(t, 3, c.Summary.ItemCount)
	})

	t.Run("Success - Sessions are isolated", func(t *testing.T) {
		svc := NewService(NewMemoryRepository())

		_, err := svc.AddItem(ctx, "sess-a", item(1, "Leather Handbag", 100, 1))
		assert.NoError(t, err)

		c, err := svc.GetCart(ctx, "sess-b")

		assert.NoError(t, err)
		assert.Empty(t, c.Items)
	})
}

func TestService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := NewService(NewMemoryRepository())
		_, err := svc.AddItem(ctx, sessionID, item(1, "Silk Scarf", 79.99, 1))
		assert.NoError(t, err)

		items, err := svc.UpdateQuantity(ctx, sessionID, 1, 4)

		assert.NoError(t, err)
		assert.Equal(t, 4, items[0].Quantity)
	})

	t.Run("Error - Quantity below one", func(t *testing.T) {
		svc := NewService(NewMemoryRepository())

		_, err := svc.UpdateQuantity(ctx, sessionID, 1, 0)

		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("Error - Item not in cart", func(t *testing.T) {
		svc := NewService(NewMemoryRepository())

		_, err := svc.UpdateQuantity(ctx, sessionID, 99, 2)

		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestService_RemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := NewService(NewMemoryRepository())
		_, err := svc.AddItem(ctx, sessionID, item(1, "Silk Scarf", 79.99, 1))
		assert.NoError(t, err)
		_, err = svc.AddItem(ctx, sessionID, item(2, "Leather Belt", 49.99, 1))
		assert.NoError(t, err)

		items, err := svc.RemoveItem(ctx, sessionID, 1)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 2, items[0].ProductID)
	})

	t.Run("Success - Removing absent item is a no-op", func(t *testing.T) {
		svc := NewService(NewMemoryRepository())
		_, err := svc.AddItem(ctx, sessionID, item(1, "Silk Scarf", 79.99, 1))
		assert.NoError(t, err)

		items, err := svc.RemoveItem(ctx, sessionID, 99)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestService_ClearCart(t *testing.T) {
	ctx := context.Background()

	svc := NewService(NewMemoryRepository())
	_, err := svc.AddItem(ctx, sessionID, item(1, "Silk Scarf", 79.99, 1))
	assert.NoError(t, err)

	assert.NoError(t, svc.ClearCart(ctx, sessionID))

	c, err := svc.GetCart(ctx, sessionID)
	assert.NoError(t, err)
	assert.Empty(t, c.Items)
}
