package payment

import (
	"context"
	"errors"
	"time"
)

// ErrDeclined is returned when the payment authority rejects a charge.
var ErrDeclined = errors.New("payment declined")

// Details carries method-specific payment input from the client.
type Details struct {
	CardNumber string `json:"cardNumber,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVV        string `json:"cvv,omitempty"`
}

// ChargeResult is the payment authority's record of a successful charge.
type ChargeResult struct {
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	ProcessedAt   time.Time `json:"processedAt"`
}

// Gateway authorizes charges. Implementations must honor ctx so callers
// can bound how long a charge attempt may take.
type Gateway interface {
	Charge(ctx context.Context, method string, amount float64, details Details) (*ChargeResult, error)
}
