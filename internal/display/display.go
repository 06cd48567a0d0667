// Package display renders conversion values for presentation: currency
// style amounts and the effective exchange rate.
package display

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RatePlaces is the number of decimal places the effective rate is shown with.
const RatePlaces = 4

// FormatAmount renders value in the currency style of code, e.g. "$ 100.00".
// Codes unknown to the currency tables are rendered as "100.00 XYZ".
func FormatAmount(value float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return strconv.FormatFloat(value, 'f', 2, 64) + " " + code
	}
	return message.NewPrinter(language.AmericanEnglish).Sprint(currency.Symbol(unit.Amount(value)))
}

// EffectiveRate returns converted/amount rounded to RatePlaces decimals.
// A zero amount or a non-finite converted value yields an empty string.
func EffectiveRate(converted float64, amount decimal.Decimal) string {
	if amount.IsZero() || math.IsInf(converted, 0) || math.IsNaN(converted) {
		return ""
	}
	return decimal.NewFromFloat(converted).Div(amount).StringFixed(RatePlaces)
}
