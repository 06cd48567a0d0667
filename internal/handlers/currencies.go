package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// CatalogReader exposes the currency catalog load state.
type CatalogReader interface {
	Catalog() models.CatalogState
}

// NewGetCurrenciesHandler returns an HTTP handler listing supported currencies.
// @Summary List currencies
// @Description Returns the currency catalog and its load status. The list is empty while loading or after a failed load.
// @Tags currencies
// @Produce json
// @Success 200 {object} models.CatalogState
// @Router /currencies [get]
func NewGetCurrenciesHandler(reader CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, reader.Catalog())
	}
}
