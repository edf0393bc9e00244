package httpapi

import (
	"errors"
	"net/http"

	"luxe-be/internal/cart"
	"luxe-be/internal/checkout"
	"luxe-be/internal/order"
	"luxe-be/internal/payment"
	"luxe-be/internal/pricing"
)

func (s *Server) handleCheckoutValidate(w http.ResponseWriter, r *http.Request) {
	var req checkout.ValidateRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := checkout.Validate(req); len(errs) > 0 {
		failFields(w, r, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	okMessage(w, r, nil, "Checkout data is valid")
}

func (s *Server) handleCalculateShipping(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cart            []cart.Item    `json:"cart"`
		ShippingAddress *order.Address `json:"shippingAddress"`
	}
	if err := decode(r, &req); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	ok(w, r, checkout.ShippingOptions(req.Cart, req.ShippingAddress))
}

func (s *Server) handleCalculateTax(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Subtotal float64 `json:"subtotal"`
		State    string  `json:"state"`
	}
	if err := decode(r, &req); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	ok(w, r, checkout.EstimateTax(req.Subtotal, req.State))
}

// handleProcessPayment charges the gateway directly without creating an
// order. It backs the payment step of a multi-stage checkout flow.
func (s *Server) handleProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentMethod  string          `json:"paymentMethod"`
		PaymentDetails payment.Details `json:"paymentDetails"`
		Cart           []cart.Item     `json:"cart"`
		Amount         float64         `json:"amount"`
	}
	if err := decode(r, &req); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	method := req.PaymentMethod
	if method == "" {
		method = "card"
	}

	if err := checkout.ValidatePayment(method, req.PaymentDetails); err != nil {
		fail(w, r, http.StatusBadRequest, err.Error())
		return
	}

	amount := req.Amount
	if amount == 0 && len(req.Cart) > 0 {
		amount = pricing.Subtotal(req.Cart).Round(2).InexactFloat64()
	}

	result, err := s.gateway.Charge(r.Context(), method, amount, req.PaymentDetails)
	if err != nil {
		if errors.Is(err, payment.ErrDeclined) {
			fail(w, r, http.StatusPaymentRequired, "Payment declined. Please try a different payment method.")
			return
		}
		s.internalError(w, r, err)
		return
	}

	okMessage(w, r, result, "Payment processed successfully")
}

func (s *Server) handlePaymentMethods(w http.ResponseWriter, r *http.Request) {
	ok(w, r, checkout.PaymentMethods())
}
