package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// Selector changes the selected currency pair.
type Selector interface {
	Select(fromCurrency, toCurrency string) (models.WidgetState, error)
}

// NewSelectHandler returns an HTTP handler for changing the currency pair.
// @Summary Select currencies
// @Description Sets the source and target currencies. Both must be in the catalog once it is loaded.
// @Tags widget
// @Accept json
// @Produce json
// @Param request body models.SelectionRequest true "Selection Request"
// @Success 200 {object} models.WidgetState
// @Failure 400 {object} models.ErrorResponse "Invalid request or unknown currency"
// @Router /selection [put]
func NewSelectHandler(selector Selector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SelectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		state, err := selector.Select(req.From, req.To)
		if err != nil {
			if errors.Is(err, services.ErrUnknownCurrency) {
				writeError(w, http.StatusBadRequest, services.MsgUnknownCurrency)
				return
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}
