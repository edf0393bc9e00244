// Package notify delivers simulated customer notifications. There is no
// real mail transport; events are written to the structured log.
package notify

import (
	"go.uber.org/zap"

	"luxe-be/internal/logger"
	"luxe-be/internal/order"
)

// LogNotifier implements order.Notifier by logging each event.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(o *order.Order, event order.Event) {
	log := logger.L().With(
		zap.String("order_id", o.OrderID),
		zap.String("email", o.CustomerInfo.Email),
	)

	switch event {
	case order.EventOrderConfirmed:
		log.Info("order confirmation email sent",
			zap.Float64("total", o.Pricing.Total),
		)
	case order.EventStatusUpdated:
		log.Info("status update email sent",
			zap.String("status", string(o.Status)),
		)
	default:
		log.Warn("unknown notification event", zap.String("event", string(event)))
	}
}
