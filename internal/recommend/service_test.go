package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"luxe-be/internal/cart"
	"luxe-be/internal/catalog"
)

// reverseShuffle pins the shuffle order for deterministic assertions.
func reverseShuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

// noShuffle leaves the catalog order untouched.
func noShuffle(n int, swap func(i, j int)) {}

func TestService_Similar(t *testing.T) {
	ctx := context.Background()
	svc := NewService(catalog.NewRepository())

	t.Run("Success - Last viewed category in catalog order", func(t *testing.T) {
		// Product 1 is electronics.
		products, err := svc.Similar(ctx, []int{1}, 0)

		assert.NoError(t, err)
		assert.Len(t, products, 4)
		assert.Equal(t, []int{2, 5, 8, 10}, idsOf(products))
	})

	t.Run("Success - Only the last viewed product picks the category", func(t *testing.T) {
		// 1 is electronics, 3 is fashion; the last entry wins.
		products, err := svc.Similar(ctx, []int{1, 3}, 10)

		assert.NoError(t, err)
		assert.NotEmpty(t, products)
		for _, p := range products {
			assert.Equal(t, "fashion", p.Category)
		}
	})

	t.Run("Success - All viewed products excluded", func(t *testing.T) {
		products, err := svc.Similar(ctx, []int{2, 5, 1}, 10)

		assert.NoError(t, err)
		assert.Equal(t, []int{8, 10}, idsOf(products))
	})

	t.Run("Success - Limit respected", func(t *testing.T) {
		products, err := svc.Similar(ctx, []int{1}, 2)

		assert.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("Success - Empty input yields empty result", func(t *testing.T) {
		products, err := svc.Similar(ctx, nil, 4)

		assert.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Success - Unknown last viewed id yields empty result", func(t *testing.T) {
		products, err := svc.Similar(ctx, []int{1, 999}, 4)

		assert.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestService_CartBased(t *testing.T) {
	ctx := context.Background()
	svc := NewService(catalog.NewRepository())

	t.Run("Success - Price descending, cart products excluded", func(t *testing.T) {
		items := []cart.Item{{ProductID: 3, Name: "Ray-Ban Aviator Sunglasses", Price: 199, Quantity: 1}}

		products, err := svc.CartBased(ctx, items, 10)

		assert.NoError(t, err)
		assert.NotEmpty(t, products)
		for i, p := range products {
			assert.Equal(t, "fashion", p.Category)
			assert.NotEqual(t, 3, p.ID)
			if i > 0 {
				assert.GreaterOrEqual(t, products[i-1].Price, p.Price)
			}
		}
	})

	t.Run("Success - Empty cart yields empty result", func(t *testing.T) {
		products, err := svc.CartBased(ctx, nil, 4)

		assert.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestService_Trending(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Default limit of six", func(t *testing.T) {
		svc := newServiceWithShuffle(catalog.NewRepository(), noShuffle)

		products, err := svc.Trending(ctx, 0)

		assert.NoError(t, err)
		assert.Len(t, products, 6)
	})

	t.Run("Success - Shuffle order drives the selection", func(t *testing.T) {
		svc := newServiceWithShuffle(catalog.NewRepository(), reverseShuffle)

		products, err := svc.Trending(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, []int{12, 11, 10}, idsOf(products))
	})

	t.Run("Success - Limit capped by catalog size", func(t *testing.T) {
		svc := NewService(catalog.NewRepository())

		products, err := svc.Trending(ctx, 50)

		assert.NoError(t, err)
		assert.Len(t, products, 12)
	})
}

func TestService_Personalized(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Deterministic with pinned shuffle", func(t *testing.T) {
		svc := newServiceWithShuffle(catalog.NewRepository(), reverseShuffle)

		products, err := svc.Personalized(ctx, "user-1", 3)

		assert.NoError(t, err)
		assert.Equal(t, []int{12, 11, 10}, idsOf(products))
	})

	t.Run("Success - Default limit of six", func(t *testing.T) {
		svc := newServiceWithShuffle(catalog.NewRepository(), noShuffle)

		products, err := svc.Personalized(ctx, "user-1", 0)

		assert.NoError(t, err)
		assert.Len(t, products, 6)
	})
}

func idsOf(products []catalog.Product) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
