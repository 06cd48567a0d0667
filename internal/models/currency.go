package models

import "sort"

// Currency codes used as the widget's default selection.
const (
	USD = "USD"
	EUR = "EUR"
	INR = "INR"
)

// Catalog maps a currency code (e.g. "USD") to its display name.
// swagger:model Catalog
type Catalog map[string]string

// Has reports whether code is present in the catalog.
func (c Catalog) Has(code string) bool {
	_, ok := c[code]
	return ok
}

// Codes returns the catalog's currency codes in ascending order.
func (c Catalog) Codes() []string {
	codes := make([]string, 0, len(c))
	for code := range c {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Clone returns a copy that callers may keep without sharing the map.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for code, name := range c {
		out[code] = name
	}
	return out
}
