package payment

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"luxe-be/internal/ids"
	"luxe-be/internal/logger"
)

// Simulator stands in for a real payment gateway: it sleeps to mimic
// processing latency and approves charges at a configured rate.
type Simulator struct {
	successRate float64
	latency     time.Duration
}

// NewSimulator builds a simulated gateway. successRate is the approval
// probability in [0, 1]; latency is the simulated processing delay.
func NewSimulator(successRate float64, latency time.Duration) *Simulator {
	return &Simulator{successRate: successRate, latency: latency}
}

func (s *Simulator) Charge(ctx context.Context, method string, amount float64, details Details) (*ChargeResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("payment processing: %w", ctx.Err())
	case <-time.After(s.latency):
	}

	if rand.Float64() >= s.successRate {
		logger.FromCtx(ctx).Warn("charge declined",
			zap.String("method", method),
			zap.Float64("amount", amount),
		)
		return nil, ErrDeclined
	}

	result := &ChargeResult{
		TransactionID: ids.NewTransactionID(),
		Amount:        amount,
		PaymentMethod: method,
		Status:        "completed",
		ProcessedAt:   time.Now().UTC(),
	}

	logger.FromCtx(ctx).Info("charge approved",
		zap.String("transaction_id", result.TransactionID),
		zap.String("method", method),
		zap.Float64("amount", amount),
	)

	return result, nil
}
