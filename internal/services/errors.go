package services

import "errors"

var (
	ErrCatalogLoadFailure = errors.New("catalog load failure")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrConversionFailure  = errors.New("conversion failure")
	ErrUnknownCurrency    = errors.New("unknown currency")
)

// User-visible messages for the widget's error state.
const (
	MsgCatalogLoadFailure = "Failed to load currency list."
	MsgInvalidAmount      = "Please enter a valid amount"
	MsgConversionFailure  = "Failed to fetch rates. Please try again later."
	MsgUnknownCurrency    = "Unknown currency"
)

// UserMessage maps an error returned by this package to the fixed text shown
// to the user. Unknown errors are reported as conversion failures.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCatalogLoadFailure):
		return MsgCatalogLoadFailure
	case errors.Is(err, ErrInvalidAmount):
		return MsgInvalidAmount
	case errors.Is(err, ErrUnknownCurrency):
		return MsgUnknownCurrency
	default:
		return MsgConversionFailure
	}
}
