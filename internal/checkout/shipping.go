package checkout

import (
	"luxe-be/internal/cart"
	"luxe-be/internal/order"
	"luxe-be/internal/pricing"
)

const internationalSurcharge = 30
const internationalExtraDays = 5

type ShippingOption struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	EstimatedDays int     `json:"estimatedDays"`
}

type ShippingQuote struct {
	Options               []ShippingOption `json:"options"`
	FreeShippingThreshold float64          `json:"freeShippingThreshold"`
	CurrentSubtotal       float64          `json:"currentSubtotal"`
}

// ShippingOptions quotes the available shipping tiers for the given
// items. Non-USA destinations pay a surcharge and wait longer.
func ShippingOptions(items []cart.Item, address *order.Address) ShippingQuote {
	subtotal := pricing.Subtotal(items)

	standardPrice := 15.0
	if subtotal.GreaterThan(pricing.FreeShippingThreshold) {
		standardPrice = 0
	}

	options := []ShippingOption{
		{
			ID:            "standard",
			Name:          "Standard Shipping",
			Description:   "5-7 business days",
			Price:         standardPrice,
			EstimatedDays: 7,
		},
		{
			ID:            "express",
			Name:          "Express Shipping",
			Description:   "2-3 business days",
			Price:         25,
			EstimatedDays: 3,
		},
		{
			ID:            "overnight",
			Name:          "Overnight Shipping",
			Description:   "Next business day",
			Price:         45,
			EstimatedDays: 1,
		},
	}

	if address != nil && address.Country != "" && address.Country != "USA" {
		for i := range options {
			options[i].Price += internationalSurcharge
			options[i].EstimatedDays += internationalExtraDays
		}
	}

	return ShippingQuote{
		Options:               options,
		FreeShippingThreshold: 500,
		CurrentSubtotal:       subtotal.Round(2).InexactFloat64(),
	}
}
