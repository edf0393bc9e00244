package cart

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// -- Resource State --
	ErrItemNotFound = errors.New("item not found in cart")
)
