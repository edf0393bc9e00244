// Package checkout provides the pre-order advisory operations: input
// validation, shipping quotes, a per-state tax estimate and payment
// method checks. The estimates here are informational; order creation
// prices independently.
package checkout

import (
	"regexp"
	"strings"

	"luxe-be/internal/cart"
	"luxe-be/internal/order"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9\s\-+()]{10,}$`)
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateRequest is the payload checked before checkout proceeds.
type ValidateRequest struct {
	Cart            []cart.Item         `json:"cart"`
	CustomerInfo    *order.CustomerInfo `json:"customerInfo"`
	ShippingAddress *order.Address      `json:"shippingAddress"`
	BillingAddress  *order.Address      `json:"billingAddress,omitempty"`
}

// Validate checks the full checkout payload and returns every field
// error found, not just the first.
func Validate(req ValidateRequest) []FieldError {
	var errs []FieldError

	if len(req.Cart) == 0 {
		errs = append(errs, FieldError{Field: "cart", Message: "Cart is empty"})
	}

	if req.CustomerInfo == nil {
		errs = append(errs, FieldError{Field: "customerInfo", Message: "Customer information is required"})
	} else {
		if len(strings.TrimSpace(req.CustomerInfo.Name)) < 2 {
			errs = append(errs, FieldError{Field: "name", Message: "Valid name is required"})
		}
		if !emailRegex.MatchString(req.CustomerInfo.Email) {
			errs = append(errs, FieldError{Field: "email", Message: "Valid email is required"})
		}
		if !phoneRegex.MatchString(req.CustomerInfo.Phone) {
			errs = append(errs, FieldError{Field: "phone", Message: "Valid phone number is required"})
		}
	}

	if req.ShippingAddress == nil {
		errs = append(errs, FieldError{Field: "shippingAddress", Message: "Shipping address is required"})
	} else {
		if req.ShippingAddress.Street == "" {
			errs = append(errs, FieldError{Field: "street", Message: "Street address is required"})
		}
		if req.ShippingAddress.City == "" {
			errs = append(errs, FieldError{Field: "city", Message: "City is required"})
		}
		if req.ShippingAddress.State == "" {
			errs = append(errs, FieldError{Field: "state", Message: "State is required"})
		}
		if req.ShippingAddress.Zip == "" {
			errs = append(errs, FieldError{Field: "zip", Message: "ZIP code is required"})
		}
		if req.ShippingAddress.Country == "" {
			errs = append(errs, FieldError{Field: "country", Message: "Country is required"})
		}
	}

	return errs
}
