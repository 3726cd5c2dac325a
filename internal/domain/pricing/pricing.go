// Package pricing is the single source of stamp prices.
package pricing

import "github.com/shopspring/decimal"

var (
	// BasePrice is charged for every stamp, in AED.
	BasePrice = decimal.NewFromInt(149)
	// LogoPrice is added when the stamp carries a custom logo, in AED.
	LogoPrice = decimal.NewFromInt(49)
)

// Quote is the price breakdown for one stamp.
type Quote struct {
	BasePrice  decimal.Decimal `json:"basePrice"`
	LogoPrice  decimal.Decimal `json:"logoPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Calculate prices a single stamp.
func Calculate(hasLogo bool) Quote {
	logo := decimal.Zero
	if hasLogo {
		logo = LogoPrice
	}

	return Quote{
		BasePrice:  BasePrice,
		LogoPrice:  logo,
		TotalPrice: BasePrice.Add(logo),
	}
}

// Sum adds up the totals of the given quotes.
func Sum(quotes ...Quote) decimal.Decimal {
	total := decimal.Zero
	for _, q := range quotes {
		total = total.Add(q.TotalPrice)
	}

	return total
}

// MinorUnits converts an AED amount to fils, rounding half away from zero.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
