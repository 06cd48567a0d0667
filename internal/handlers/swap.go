package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Swapper exchanges the selected currencies.
type Swapper interface {
	Swap() models.WidgetState
}

// NewSwapHandler returns an HTTP handler that swaps source and target currencies.
// @Summary Swap currencies
// @Description Exchanges source and target currencies and clears the last result
// @Tags widget
// @Produce json
// @Success 200 {object} models.WidgetState
// @Router /swap [post]
func NewSwapHandler(swapper Swapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, swapper.Swap())
	}
}
