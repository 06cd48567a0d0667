package models

// ConversionRequest is the input of a single conversion, rebuilt from the
// current selection every time the user triggers a conversion.
type ConversionRequest struct {
	Amount string // amount exactly as entered
	From   string
	To     string
}

// ConversionResult holds the outcome of a successful conversion.
// swagger:model ConversionResult
type ConversionResult struct {
	// Converted amount in the target currency
	// example: 92.5
	ConvertedAmount float64 `json:"converted_amount"`

	// Converted amount divided by the original amount, 4 decimal places
	// example: 0.9250
	EffectiveRate string `json:"effective_rate"`

	// Original amount formatted in the source currency
	// example: $ 100.00
	FormattedAmount string `json:"formatted_amount"`

	// Converted amount formatted in the target currency
	// example: € 92.50
	FormattedConverted string `json:"formatted_converted"`
}

// ConvertRequest represents the JSON body for a conversion.
// swagger:model ConvertRequest
type ConvertRequest struct {
	// Amount to convert, as entered by the user
	// required: true
	// example: 100
	Amount string `json:"amount"`

	// Source currency; the current selection is used when empty
	// example: USD
	From string `json:"from,omitempty"`

	// Target currency; the current selection is used when empty
	// example: EUR
	To string `json:"to,omitempty"`
}

// SelectionRequest represents the JSON body for changing the currency pair.
// swagger:model SelectionRequest
type SelectionRequest struct {
	// Source currency
	// required: true
	// example: USD
	From string `json:"from"`

	// Target currency
	// required: true
	// example: EUR
	To string `json:"to"`
}

// ErrorResponse represents an error returned for a malformed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Unknown currency
	Error string `json:"error"`
}
