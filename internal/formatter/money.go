package formatter

import (
	"github.com/shopspring/decimal"
)

const (
	AmountPlaces  int32 = 2
	PercentPlaces int32 = 1
)

// Amount rounds a currency value half away from zero to cents.
func Amount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(AmountPlaces)
}

// Percent rounds a percentage to one decimal place.
func Percent(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(PercentPlaces)
}

// AmountString renders v as a fixed two-decimal string, e.g. "5.00".
func AmountString(v float64) string {
	return Amount(v).StringFixed(AmountPlaces)
}

// PercentString renders v as a fixed one-decimal string, e.g. "-2.0".
func PercentString(v float64) string {
	return Percent(v).StringFixed(PercentPlaces)
}

// Float converts a rounded decimal back for JSON responses.
func Float(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
