package order

import "errors"

var (
	// -- Validation & Input --
	ErrEmptyCart               = errors.New("cart is empty")
	ErrCustomerInfoRequired    = errors.New("customer information is required")
	ErrShippingAddressRequired = errors.New("shipping address is required")
	ErrInvalidStatus           = errors.New("invalid status")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
	ErrCannotCancel  = errors.New("order cannot be cancelled at this stage")

	// -- External Systems --
	ErrPaymentFailed = errors.New("payment processing failed")
)
