package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimulator_Charge(t *testing.T) {
	ctx := context.Background()
	details := Details{CardNumber: "4532015112830366", ExpiryDate: "12/27", CVV: "123"}

	t.Run("Success - Always approves at rate 1", func(t *testing.T) {
		sim := NewSimulator(1.0, time.Millisecond)

		result, err := sim.Charge(ctx, "card", 125.50, details)

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.TransactionID, "TXN-"))
		assert.Equal(t, 125.50, result.Amount)
		assert.Equal(t, "card", result.PaymentMethod)
		assert.Equal(t, "completed", result.Status)
		assert.False(t, result.ProcessedAt.IsZero())
	})

	t.Run("Error - Always declines at rate 0", func(t *testing.T) {
		sim := NewSimulator(0, time.Millisecond)

		_, err := sim.Charge(ctx, "card", 50, details)

		assert.ErrorIs(t, err, ErrDeclined)
	})

	t.Run("Error - Context deadline beats latency", func(t *testing.T) {
		sim := NewSimulator(1.0, time.Second)

		timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		_, err := sim.Charge(timeoutCtx, "card", 50, details)

		assert.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Error - Cancelled context", func(t *testing.T) {
		sim := NewSimulator(1.0, time.Second)

		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := sim.Charge(cancelCtx, "card", 50, details)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
