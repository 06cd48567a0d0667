package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// Converter runs conversions on the widget.
type Converter interface {
	ChangeSelection(fromCurrency, toCurrency string) (models.WidgetState, error)
	Convert(ctx context.Context, amountText string) models.WidgetState
}

// NewConvertHandler returns an HTTP handler that converts an amount.
// @Summary Convert amount
// @Description Converts the amount with the selected currencies. When from/to are given they are selected first.
// @Description Validation and lookup failures are reported in the returned state, not as HTTP errors.
// @Tags widget
// @Accept json
// @Produce json
// @Param request body models.ConvertRequest true "Convert Request"
// @Success 200 {object} models.WidgetState
// @Failure 400 {object} models.ErrorResponse "Invalid request or unknown currency"
// @Router /convert [post]
func NewConvertHandler(converter Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ConvertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.From != "" || req.To != "" {
			if _, err := converter.ChangeSelection(req.From, req.To); err != nil {
				if errors.Is(err, services.ErrUnknownCurrency) {
					writeError(w, http.StatusBadRequest, services.MsgUnknownCurrency)
					return
				}
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
		}

		writeJSON(w, http.StatusOK, converter.Convert(r.Context(), req.Amount))
	}
}
