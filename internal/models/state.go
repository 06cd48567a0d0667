package models

// Status is the lifecycle tag of an asynchronous widget operation.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// CatalogState is the state of the one-time currency list load.
// swagger:model CatalogState
type CatalogState struct {
	// Load status
	// example: success
	Status Status `json:"status"`

	// Supported currencies, empty until the load succeeds
	Currencies Catalog `json:"currencies"`
}

// Loading reports whether the currency list is still being fetched.
func (s CatalogState) Loading() bool {
	return s.Status == StatusLoading
}

// ConversionState is the state of the most recently started conversion.
// A result is present only in StatusSuccess and an error message only in
// StatusFailure.
// swagger:model ConversionState
type ConversionState struct {
	// Conversion status
	// example: success
	Status Status `json:"status"`

	// Result of the last successful conversion
	Result *ConversionResult `json:"result,omitempty"`

	// User-visible failure message
	Error string `json:"error,omitempty"`
}

// InProgress reports whether a conversion is running.
func (s ConversionState) InProgress() bool {
	return s.Status == StatusLoading
}

// WidgetState is a point-in-time snapshot of the whole widget.
// swagger:model WidgetState
type WidgetState struct {
	// Currency list load state
	Catalog CatalogState `json:"catalog"`

	// Selected source currency
	// example: USD
	From string `json:"from"`

	// Selected target currency
	// example: INR
	To string `json:"to"`

	// Amount as last submitted
	// example: 100
	Amount string `json:"amount"`

	// Conversion state
	Conversion ConversionState `json:"conversion"`

	// Whether a conversion is running; front ends disable the trigger
	ConversionInProgress bool `json:"conversion_in_progress"`

	// Single active user-visible error, if any
	Error string `json:"error,omitempty"`
}
