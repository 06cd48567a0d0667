package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
	"github.com/stretchr/testify/require"
)

func TestConvertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	converter := handlers.NewMockConverter(ctrl)
	handler := handlers.NewConvertHandler(converter)

	success := models.WidgetState{
		From:   "USD",
		To:     "EUR",
		Amount: "100",
		Conversion: models.ConversionState{
			Status: models.StatusSuccess,
			Result: &models.ConversionResult{ConvertedAmount: 92.5, EffectiveRate: "0.9250"},
		},
	}

	tests := []struct {
		name      string
		body      string
		mockSetup func()
		wantCode  int
		check     func(t *testing.T, body map[string]interface{})
	}{
		{
			name: "uses_current_selection",
			body: `{"amount":"100"}`,
			mockSetup: func() {
				converter.EXPECT().Convert(gomock.Any(), "100").Return(success)
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				conversion := body["conversion"].(map[string]interface{})
				result := conversion["result"].(map[string]interface{})
				require.Equal(t, 92.5, result["converted_amount"])
				require.Equal(t, "0.9250", result["effective_rate"])
			},
		},
		{
			name: "selects_pair_first",
			body: `{"amount":"100","from":"USD","to":"EUR"}`,
			mockSetup: func() {
				gomock.InOrder(
					converter.EXPECT().ChangeSelection("USD", "EUR").Return(models.WidgetState{From: "USD", To: "EUR"}, nil),
					converter.EXPECT().Convert(gomock.Any(), "100").Return(success),
				)
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				require.Equal(t, "EUR", body["to"])
			},
		},
		{
			name: "passes_partial_pair_through",
			body: `{"amount":"100","to":"EUR"}`,
			mockSetup: func() {
				gomock.InOrder(
					converter.EXPECT().ChangeSelection("", "EUR").Return(models.WidgetState{From: "GBP", To: "EUR"}, nil),
					converter.EXPECT().Convert(gomock.Any(), "100").Return(success),
				)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "invalid_amount_reported_in_state",
			body: `{"amount":"-5"}`,
			mockSetup: func() {
				converter.EXPECT().Convert(gomock.Any(), "-5").Return(models.WidgetState{
					Conversion: models.ConversionState{Status: models.StatusFailure, Error: services.MsgInvalidAmount},
					Error:      services.MsgInvalidAmount,
				})
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				require.Equal(t, "Please enter a valid amount", body["error"])
				conversion := body["conversion"].(map[string]interface{})
				require.NotContains(t, conversion, "result")
			},
		},
		{
			name: "unknown_currency",
			body: `{"amount":"100","from":"XYZ"}`,
			mockSetup: func() {
				converter.EXPECT().
					ChangeSelection("XYZ", "").
					Return(models.WidgetState{}, fmt.Errorf("%w: XYZ", services.ErrUnknownCurrency))
			},
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				require.Equal(t, "Unknown currency", body["error"])
			},
		},
		{
			name:      "malformed_body",
			body:      `amount=100`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				require.Equal(t, "Invalid request body", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()
			require.Equal(t, tt.wantCode, res.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			if tt.check != nil {
				tt.check(t, body)
			}
		})
	}
}
