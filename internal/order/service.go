package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"luxe-be/internal/cart"
	"luxe-be/internal/ids"
	"luxe-be/internal/logger"
	"luxe-be/internal/payment"
	"luxe-be/internal/pricing"
)

const deliveryEstimate = 7 * 24 * time.Hour

// CreateOrderInput is the checkout payload for a new order.
type CreateOrderInput struct {
	SessionID       string          `json:"sessionId,omitempty"`
	Items           []cart.Item     `json:"items"`
	CustomerInfo    CustomerInfo    `json:"customerInfo"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentDetails  payment.Details `json:"paymentDetails"`
	ShippingAddress Address         `json:"shippingAddress"`
	BillingAddress  *Address        `json:"billingAddress,omitempty"`
	CouponCode      string          `json:"couponCode,omitempty"`
}

// Filter narrows order listings.
type Filter struct {
	SessionID string
	Email     string
}

// Service drives the order lifecycle: creation with payment, status
// transitions, cancellation with refund, and tracking.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetOrders(ctx context.Context, filter Filter) ([]*Order, error)
	GetOrderDetail(ctx context.Context, orderID string) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status, message string) (*Order, error)
	Cancel(ctx context.Context, orderID, reason string) (*Order, error)
	Track(ctx context.Context, orderID string) (*Tracking, error)
}

type service struct {
	repo          Repository
	gateway       payment.Gateway
	renderer      InvoiceRenderer
	notifier      Notifier
	ids           ids.Generator
	chargeTimeout time.Duration
}

func NewService(
	repo Repository,
	gateway payment.Gateway,
	renderer InvoiceRenderer,
	notifier Notifier,
	gen ids.Generator,
	chargeTimeout time.Duration,
) Service {
	return &service{
		repo:          repo,
		gateway:       gateway,
		renderer:      renderer,
		notifier:      notifier,
		ids:           gen,
		chargeTimeout: chargeTimeout,
	}
}

func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Int("item_count", len(input.Items)),
	)

	// 1. Validate before touching the payment authority.
	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if input.CustomerInfo.Name == "" || input.CustomerInfo.Email == "" {
		return nil, ErrCustomerInfoRequired
	}
	if input.ShippingAddress.Street == "" || input.ShippingAddress.City == "" {
		return nil, ErrShippingAddressRequired
	}

	method := input.PaymentMethod
	if method == "" {
		method = "card"
	}

	// 2. Price once; the quote is immutable after this point.
	quote, applied := pricing.Calculate(input.Items, input.CouponCode)

	log.Info("order priced",
		zap.Float64("subtotal", quote.Subtotal),
		zap.Float64("tax", quote.Tax),
		zap.Float64("shipping", quote.Shipping),
		zap.Float64("discount", quote.Discount),
		zap.Float64("total", quote.Total),
	)

	// 3. Charge with a bounded timeout; expiry counts as a decline.
	chargeCtx, cancel := context.WithTimeout(ctx, s.chargeTimeout)
	defer cancel()

	charge, err := s.gateway.Charge(chargeCtx, method, quote.Total, input.PaymentDetails)
	if err != nil {
		log.Warn("charge failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	// 4. Build the order snapshot.
	now := time.Now().UTC()
	items := make([]cart.Item, len(input.Items))
	copy(items, input.Items)

	billing := input.ShippingAddress
	if input.BillingAddress != nil {
		billing = *input.BillingAddress
	}

	o := &Order{
		OrderID:       s.ids.OrderID(),
		SessionID:     input.SessionID,
		Items:         items,
		CustomerInfo:  input.CustomerInfo,
		PaymentMethod: method,
		PaymentDetails: PaymentDetails{
			TransactionID: charge.TransactionID,
			ProcessedAt:   charge.ProcessedAt,
			Status:        "completed",
		},
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  billing,
		Pricing:         quote,
		Coupon:          applied,
		Status:          StatusConfirmed,
		PaymentStatus:   PaymentPaid,
		TrackingNumber:  s.ids.TrackingNumber(),
		StatusHistory: []HistoryEntry{
			{Status: StatusConfirmed, Timestamp: now, Message: StatusConfirmed.DefaultMessage()},
		},
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.Add(deliveryEstimate),
	}

	// 5. Best-effort invoice; a rendering failure never fails the order.
	if inv, err := s.renderer.Render(o); err != nil {
		log.Error("failed to generate invoice", zap.String("order_id", o.OrderID), zap.Error(err))
	} else {
		o.Invoice = inv
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}

	// 6. Fire-and-forget confirmation.
	s.notifier.Notify(o, EventOrderConfirmed)

	log.Info("order created",
		zap.String("order_id", o.OrderID),
		zap.String("transaction_id", charge.TransactionID),
	)

	return o, nil
}

func (s *service) GetOrders(ctx context.Context, filter Filter) ([]*Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if filter.SessionID == "" && filter.Email == "" {
		return orders, nil
	}

	filtered := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if filter.SessionID != "" && o.SessionID != filter.SessionID {
			continue
		}
		if filter.Email != "" && !strings.EqualFold(o.CustomerInfo.Email, filter.Email) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered, nil
}

func (s *service) GetOrderDetail(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.Get(ctx, orderID)
}

// UpdateStatus moves the order to status and appends exactly one history
// entry. There is no transition graph: any valid status may follow any
// other.
func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status, message string) (*Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if message == "" {
		message = status.DefaultMessage()
	}

	updated, err := s.repo.Update(ctx, orderID, func(o *Order) error {
		now := time.Now().UTC()
		o.Status = status
		o.UpdatedAt = now
		o.StatusHistory = append(o.StatusHistory, HistoryEntry{
			Status:    status,
			Timestamp: now,
			Message:   message,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(updated, EventStatusUpdated)

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
	)

	return updated, nil
}

// Cancel refuses once the order has shipped. If the order was paid the
// payment flips to refunded and a synthetic refund record is attached.
func (s *service) Cancel(ctx context.Context, orderID, reason string) (*Order, error) {
	updated, err := s.repo.Update(ctx, orderID, func(o *Order) error {
		if o.Status == StatusShipped || o.Status == StatusDelivered {
			return ErrCannotCancel
		}

		now := time.Now().UTC()
		o.Status = StatusCancelled
		o.CancellationReason = reason
		o.CancelledAt = &now
		o.UpdatedAt = now
		o.StatusHistory = append(o.StatusHistory, HistoryEntry{
			Status:    StatusCancelled,
			Timestamp: now,
			Message:   fmt.Sprintf("Order cancelled: %s", reason),
		})

		if o.PaymentStatus == PaymentPaid {
			o.PaymentStatus = PaymentRefunded
			o.RefundDetails = &RefundDetails{
				Amount:        o.Pricing.Total,
				ProcessedAt:   now,
				TransactionID: s.ids.RefundID(),
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order cancelled",
		zap.String("order_id", orderID),
		zap.String("reason", reason),
	)

	return updated, nil
}

func (s *service) Track(ctx context.Context, orderID string) (*Tracking, error) {
	o, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &Tracking{
		OrderID:           o.OrderID,
		Status:            o.Status,
		TrackingNumber:    o.TrackingNumber,
		EstimatedDelivery: o.EstimatedDelivery,
		StatusHistory:     o.StatusHistory,
		CurrentLocation:   o.Status.Location(),
	}, nil
}
