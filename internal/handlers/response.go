package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=currencies.go -destination=mock_currencies.go -package=handlers
//go:generate mockgen -source=state.go -destination=mock_state.go -package=handlers
//go:generate mockgen -source=selection.go -destination=mock_selection.go -package=handlers
//go:generate mockgen -source=swap.go -destination=mock_swap.go -package=handlers
//go:generate mockgen -source=convert.go -destination=mock_convert.go -package=handlers

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
