package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// StateReader exposes a snapshot of the widget.
type StateReader interface {
	State() models.WidgetState
}

// NewGetStateHandler returns an HTTP handler for the current widget state.
// @Summary Get widget state
// @Description Returns selection, catalog, last conversion, loading flags and the active error
// @Tags widget
// @Produce json
// @Success 200 {object} models.WidgetState
// @Router /state [get]
func NewGetStateHandler(reader StateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, reader.State())
	}
}
