package order

import (
	"time"

	"luxe-be/internal/cart"
	"luxe-be/internal/coupon"
	"luxe-be/internal/pricing"
)

type Status string

const (
	StatusConfirmed      Status = "confirmed"
	StatusProcessing     Status = "processing"
	StatusShipped        Status = "shipped"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
	StatusRefunded       Status = "refunded"
)

var validStatuses = map[Status]bool{
	StatusConfirmed:      true,
	StatusProcessing:     true,
	StatusShipped:        true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
	StatusCancelled:      true,
	StatusRefunded:       true,
}

// Valid reports whether s belongs to the status enumeration. Membership
// is the only check performed; any valid status may follow any other.
func (s Status) Valid() bool {
	return validStatuses[s]
}

// statusMessages are the default history messages per status.
var statusMessages = map[Status]string{
	StatusConfirmed:      "Order confirmed and payment received",
	StatusProcessing:     "Order is being processed",
	StatusShipped:        "Order has been shipped",
	StatusOutForDelivery: "Order is out for delivery",
	StatusDelivered:      "Order has been delivered",
	StatusCancelled:      "Order has been cancelled",
	StatusRefunded:       "Refund has been processed",
}

// DefaultMessage returns the canned history message for s.
func (s Status) DefaultMessage() string {
	if m, ok := statusMessages[s]; ok {
		return m
	}
	return "Status updated"
}

// statusLocations map a status to a synthetic shipment location.
var statusLocations = map[Status]string{
	StatusConfirmed:      "Order Processing Center",
	StatusProcessing:     "Warehouse - Packaging",
	StatusShipped:        "In Transit",
	StatusOutForDelivery: "Local Distribution Center",
	StatusDelivered:      "Delivered to Customer",
	StatusCancelled:      "Order Cancelled",
}

// Location returns the synthetic current location for s.
func (s Status) Location() string {
	if l, ok := statusLocations[s]; ok {
		return l
	}
	return "Unknown"
}

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// HistoryEntry is one element of the append-only status audit trail.
type HistoryEntry struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

type PaymentDetails struct {
	TransactionID string    `json:"transactionId"`
	ProcessedAt   time.Time `json:"processedAt"`
	Status        string    `json:"status"`
}

type RefundDetails struct {
	Amount        float64   `json:"amount"`
	ProcessedAt   time.Time `json:"processedAt"`
	TransactionID string    `json:"transactionId"`
}

// Invoice is a reference to a rendered invoice file.
type Invoice struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	URL      string `json:"url"`
}

// Order is created once at checkout completion. Items and pricing are
// snapshots taken at creation and never recomputed; only status,
// statusHistory, paymentStatus, cancellation and refund fields, and the
// invoice reference change afterwards.
type Order struct {
	OrderID            string         `json:"orderId"`
	SessionID          string         `json:"sessionId,omitempty"`
	Items              []cart.Item    `json:"items"`
	CustomerInfo       CustomerInfo   `json:"customerInfo"`
	PaymentMethod      string         `json:"paymentMethod"`
	PaymentDetails     PaymentDetails `json:"paymentDetails"`
	ShippingAddress    Address        `json:"shippingAddress"`
	BillingAddress     Address        `json:"billingAddress"`
	Pricing            pricing.Quote  `json:"pricing"`
	Coupon             *coupon.Result `json:"coupon,omitempty"`
	Status             Status         `json:"status"`
	PaymentStatus      PaymentStatus  `json:"paymentStatus"`
	TrackingNumber     string         `json:"trackingNumber"`
	StatusHistory      []HistoryEntry `json:"statusHistory"`
	CancellationReason string         `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time     `json:"cancelledAt,omitempty"`
	RefundDetails      *RefundDetails `json:"refundDetails,omitempty"`
	Invoice            *Invoice       `json:"invoice,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	EstimatedDelivery  time.Time      `json:"estimatedDelivery"`
}

// Clone returns a deep copy so repository callers can never mutate
// stored state through a returned pointer.
func (o *Order) Clone() *Order {
	cp := *o

	cp.Items = make([]cart.Item, len(o.Items))
	copy(cp.Items, o.Items)

	cp.StatusHistory = make([]HistoryEntry, len(o.StatusHistory))
	copy(cp.StatusHistory, o.StatusHistory)

	if o.Coupon != nil {
		c := *o.Coupon
		cp.Coupon = &c
	}
	if o.CancelledAt != nil {
		t := *o.CancelledAt
		cp.CancelledAt = &t
	}
	if o.RefundDetails != nil {
		r := *o.RefundDetails
		cp.RefundDetails = &r
	}
	if o.Invoice != nil {
		inv := *o.Invoice
		cp.Invoice = &inv
	}

	return &cp
}

// Tracking is the shipment view of an order.
type Tracking struct {
	OrderID           string         `json:"orderId"`
	Status            Status         `json:"status"`
	TrackingNumber    string         `json:"trackingNumber"`
	EstimatedDelivery time.Time      `json:"estimatedDelivery"`
	StatusHistory     []HistoryEntry `json:"statusHistory"`
	CurrentLocation   string         `json:"currentLocation"`
}

// Event identifies a notification-worthy moment in the order lifecycle.
type Event string

const (
	EventOrderConfirmed Event = "order_confirmed"
	EventStatusUpdated  Event = "status_updated"
)

// InvoiceRenderer produces an invoice document for an order. Rendering is
// best-effort at order creation: failures are logged, never fatal.
type InvoiceRenderer interface {
	Render(o *Order) (*Invoice, error)
}

// Notifier delivers customer-facing order notifications. Calls are
// fire-and-forget; errors are swallowed by the caller.
type Notifier interface {
	Notify(o *Order, event Event)
}
