package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"luxe-be/internal/cart"
)

func sampleOrder(id string) *Order {
	now := time.Now().UTC()
	return &Order{
		OrderID:       id,
		Items:         []cart.Item{{ProductID: 1, Name: "Silk Scarf", Price: 79.99, Quantity: 1}},
		CustomerInfo:  CustomerInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Status:        StatusConfirmed,
		PaymentStatus: PaymentPaid,
		StatusHistory: []HistoryEntry{{Status: StatusConfirmed, Timestamp: now, Message: "ok"}},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestMemoryRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := NewMemoryRepository()

		assert.NoError(t, repo.Save(ctx, sampleOrder("ORD-1")))

		got, err := repo.Get(ctx, "ORD-1")
		assert.NoError(t, err)
		assert.Equal(t, "ORD-1", got.OrderID)
	})

	t.Run("Success - Returned order is a copy", func(t *testing.T) {
		repo := NewMemoryRepository()
		assert.NoError(t, repo.Save(ctx, sampleOrder("ORD-1")))

		got, _ := repo.Get(ctx, "ORD-1")
		got.Status = StatusDelivered
		got.StatusHistory = append(got.StatusHistory, HistoryEntry{Status: StatusDelivered})

		fresh, _ := repo.Get(ctx, "ORD-1")
		assert.Equal(t, StatusConfirmed, fresh.Status)
		assert.Len(t, fresh.StatusHistory, 1)
	})

	t.Run("Error - Not found", func(t *testing.T) {
		repo := NewMemoryRepository()

		_, err := repo.Get(ctx, "ORD-404")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestMemoryRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	assert.NoError(t, repo.Save(ctx, sampleOrder("ORD-1")))
	assert.NoError(t, repo.Save(ctx, sampleOrder("ORD-2")))
	assert.NoError(t, repo.Save(ctx, sampleOrder("ORD-3")))

	orders, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, orders, 3)
	// Insertion order is preserved.
	assert.Equal(t, "ORD-1", orders[0].OrderID)
	assert.Equal(t, "ORD-3", orders[2].OrderID)
}

func TestMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := NewMemoryRepository()
		assert.NoError(t, repo.Save(ctx, sampleOrder("ORD-1")))

		updated, err := repo.Update(ctx, "ORD-1", func(o *Order) error {
			o.Status = StatusShipped
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, StatusShipped, updated.Status)

		stored, _ := repo.Get(ctx, "ORD-1")
		assert.Equal(t, StatusShipped, stored.Status)
	})

	t.Run("Error - Failed mutation leaves order untouched", func(t *testing.T) {
		repo := NewMemoryRepository()
		assert.NoError(t, repo.Save(ctx, sampleOrder("ORD-1")))

		boom := errors.New("boom")
		_, err := repo.Update(ctx, "ORD-1", func(o *Order) error {
			o.Status = StatusCancelled
			o.StatusHistory = append(o.StatusHistory, HistoryEntry{Status: StatusCancelled})
			return boom
		})

		assert.ErrorIs(t, err, boom)

		stored, _ := repo.Get(ctx, "ORD-1")
		assert.Equal(t, StatusConfirmed, stored.Status)
		assert.Len(t, stored.StatusHistory, 1)
	})

	t.Run("Error - Not found", func(t *testing.T) {
		repo := NewMemoryRepository()

		_, err := repo.Update(ctx, "ORD-404", func(o *Order) error { return nil })
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
