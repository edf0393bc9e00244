// Package pricing computes order totals from cart contents and an
// optional coupon code.
package pricing

import (
	"github.com/shopspring/decimal"

	"luxe-be/internal/cart"
	"luxe-be/internal/coupon"
)

var (
	// TaxRate is the flat rate applied at order creation. The checkout
	// estimator keeps a separate per-state table; the two are intentionally
	// not unified.
	TaxRate = decimal.NewFromFloat(0.10)

	// FreeShippingThreshold waives the flat fee for subtotals strictly above it.
	FreeShippingThreshold = decimal.NewFromInt(500)

	FlatShippingFee = decimal.NewFromInt(15)
)

// Quote holds the monetary breakdown of an order, rounded to 2 places.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Subtotal sums price x quantity over all items. Inputs are not validated
// for negative price/quantity here; that is the caller's responsibility.
func Subtotal(items []cart.Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	return sum
}

// Calculate produces the order quote for the given items and coupon code.
// The returned coupon result is nil unless a code was supplied and valid;
// invalid or ineligible codes contribute a zero discount.
//
// Shipping-type coupons (FREESHIP) validate but do not zero the shipping
// fee here; the catalog entry exists and the gap is documented rather
// than silently fixed. The total is never clamped: with the current
// catalog every fixed coupon's value sits below its minimum order, so a
// negative total is unreachable.
func Calculate(items []cart.Item, couponCode string) (Quote, *coupon.Result) {
	subtotal := Subtotal(items)
	tax := subtotal.Mul(TaxRate)

	shipping := FlatShippingFee
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	discount := decimal.Zero
	var applied *coupon.Result
	if couponCode != "" {
		res := coupon.Validate(couponCode, subtotal)
		if res.Valid {
			discount = decimal.NewFromFloat(res.Discount)
			applied = &res
		}
	}

	total := subtotal.Add(tax).Add(shipping).Sub(discount)

	return Quote{
		Subtotal: subtotal.Round(2).InexactFloat64(),
		Tax:      tax.Round(2).InexactFloat64(),
		Shipping: shipping.Round(2).InexactFloat64(),
		Discount: discount.Round(2).InexactFloat64(),
		Total:    total.Round(2).InexactFloat64(),
	}, applied
}
