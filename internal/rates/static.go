// Package rates provides exchange rates: a static USD table for the
// aggregate balance estimate and a live lookup against a generative
// text API for the Convert flow.
package rates

import "github.com/shopspring/decimal"

// usdRates are display-only estimates, not settlement rates.
var usdRates = map[string]string{
	"USD": "1",
	"EUR": "1.08",
	"GBP": "1.27",
	"NGN": "0.00062",
	"AUD": "0.65",
	"CNY": "0.14",
}

// USDRate returns the static USD value of one unit of the given
// currency. Unknown currencies are treated 1:1, matching the dashboard's
// best-effort estimate.
func USDRate(currency string) decimal.Decimal {
	if s, ok := usdRates[currency]; ok {
		d, err := decimal.NewFromString(s)
		if err == nil {
			return d
		}
	}
	return decimal.NewFromInt(1)
}
