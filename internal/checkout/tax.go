package checkout

import "github.com/shopspring/decimal"

// stateTaxRates is the advisory per-state table. Order creation does NOT
// consult it; the order path always applies the flat 10% rate. The two
// paths are intentionally kept separate.
var stateTaxRates = map[string]decimal.Decimal{
	"CA": decimal.NewFromFloat(0.0725),
	"NY": decimal.NewFromFloat(0.08),
	"TX": decimal.NewFromFloat(0.0625),
	"FL": decimal.NewFromFloat(0.06),
	"IL": decimal.NewFromFloat(0.0625),
	"PA": decimal.NewFromFloat(0.06),
	"OH": decimal.NewFromFloat(0.0575),
}

var defaultTaxRate = decimal.NewFromFloat(0.07)

type TaxEstimate struct {
	TaxRate   float64 `json:"taxRate"`
	TaxAmount float64 `json:"taxAmount"`
	State     string  `json:"state"`
}

// EstimateTax returns the advisory tax for a subtotal shipped to state.
// TaxRate in the result is a percentage (e.g. 7.25 for CA).
func EstimateTax(subtotal float64, state string) TaxEstimate {
	rate, ok := stateTaxRates[state]
	if !ok {
		rate = defaultTaxRate
		state = "default"
	}

	amount := decimal.NewFromFloat(subtotal).Mul(rate)

	return TaxEstimate{
		TaxRate:   rate.Mul(decimal.NewFromInt(100)).InexactFloat64(),
		TaxAmount: amount.Round(2).InexactFloat64(),
		State:     state,
	}
}
