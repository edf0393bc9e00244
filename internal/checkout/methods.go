package checkout

// PaymentMethod describes one way a customer can pay.
type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

var paymentMethods = []PaymentMethod{
	{ID: "card", Name: "Credit/Debit Card", Icon: "💳", Description: "Visa, Mastercard, American Express", Enabled: true},
	{ID: "paypal", Name: "PayPal", Icon: "🅿️", Description: "Pay with your PayPal account", Enabled: true},
	{ID: "apple_pay", Name: "Apple Pay", Icon: "🍎", Description: "Pay with Apple Pay", Enabled: true},
	{ID: "google_pay", Name: "Google Pay", Icon: "🔵", Description: "Pay with Google Pay", Enabled: true},
	{ID: "crypto", Name: "Cryptocurrency", Icon: "₿", Description: "Bitcoin, Ethereum", Enabled: false},
}

// PaymentMethods lists the supported payment options.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}
