package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds on accepted amounts. Anything outside them would not survive the
// float conversion of the rate API or would expand into a huge query string.
const (
	maxAmountIntegerDigits = 300
	maxAmountScale         = 32
)

// ParseAmount validates the amount text entered by the user. It fails with
// ErrInvalidAmount when the text is empty, is not a number, is not strictly
// positive, or is outside the supported magnitude and precision.
func ParseAmount(text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s is not positive", ErrInvalidAmount, trimmed)
	}

	// Checked on the exponent first so that nothing below expands the value.
	if amount.Exponent() < -maxAmountScale {
		return decimal.Zero, fmt.Errorf("%w: %q has too many decimal places", ErrInvalidAmount, trimmed)
	}
	digits := int64(len(amount.Coefficient().String()))
	if digits+int64(amount.Exponent()) > maxAmountIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, trimmed)
	}
	if math.IsInf(amount.InexactFloat64(), 0) {
		return decimal.Zero, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, trimmed)
	}

	return amount, nil
}
