package coupon

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypePercentage Type = "percentage"
	TypeFixed      Type = "fixed"
	TypeShipping   Type = "shipping"
)

// Coupon is a static promotional code record.
type Coupon struct {
	Code     string
	Type     Type
	Value    decimal.Decimal
	MinOrder decimal.Decimal
}

// catalog holds the live promotional codes, keyed by uppercase code.
var catalog = map[string]Coupon{
	"WELCOME10": {Code: "WELCOME10", Type: TypePercentage, Value: decimal.NewFromInt(10), MinOrder: decimal.NewFromInt(50)},
	"SAVE20":    {Code: "SAVE20", Type: TypePercentage, Value: decimal.NewFromInt(20), MinOrder: decimal.NewFromInt(100)},
	"FLAT50":    {Code: "FLAT50", Type: TypeFixed, Value: decimal.NewFromInt(50), MinOrder: decimal.NewFromInt(200)},
	"FREESHIP":  {Code: "FREESHIP", Type: TypeShipping, Value: decimal.Zero, MinOrder: decimal.Zero},
}

// Result is the outcome of validating a code against a subtotal.
type Result struct {
	Valid    bool    `json:"valid"`
	Code     string  `json:"code,omitempty"`
	Type     Type    `json:"type,omitempty"`
	Discount float64 `json:"discount"`
	Message  string  `json:"message"`
}

// Lookup finds a coupon by code. Lookup is case-insensitive.
func Lookup(code string) (Coupon, bool) {
	c, ok := catalog[strings.ToUpper(code)]
	return c, ok
}

// Validate checks a code against the catalog and the order subtotal.
// It is a pure function of the catalog and its inputs.
func Validate(code string, subtotal decimal.Decimal) Result {
	c, ok := Lookup(code)
	if !ok {
		return Result{Valid: false, Message: "Invalid coupon code"}
	}

	if subtotal.LessThan(c.MinOrder) {
		return Result{
			Valid:   false,
			Message: fmt.Sprintf("Minimum order of $%s required", c.MinOrder.String()),
		}
	}

	var discount decimal.Decimal
	switch c.Type {
	case TypePercentage:
		discount = subtotal.Mul(c.Value).Div(decimal.NewFromInt(100))
	case TypeFixed:
		discount = c.Value
	}
	// Shipping-type coupons carry a zero discount; they are meant to waive
	// the shipping fee, which the order total does not apply today.

	return Result{
		Valid:    true,
		Code:     c.Code,
		Type:     c.Type,
		Discount: discount.Round(2).InexactFloat64(),
		Message:  "Coupon applied successfully!",
	}
}
