package handlers_test

import (
	"encoding/json"
	"errors"
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

func TestSelectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	selector := handlers.NewMockSelector(ctrl)
	handler := handlers.NewSelectHandler(selector)

	tests := []struct {
		name      string
		body      string
		mockSetup func()
		wantCode  int
		wantBody  map[string]interface{}
	}{
		{
			name: "success",
			body: `{"from":"EUR","to":"INR"}`,
			mockSetup: func() {
				selector.EXPECT().
					Select("EUR", "INR").
					Return(models.WidgetState{From: "EUR", To: "INR"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "malformed_body",
			body:      `{"from":`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  map[string]interface{}{"error": "Invalid request body"},
		},
		{
			name: "unknown_currency",
			body: `{"from":"USD","to":"XYZ"}`,
			mockSetup: func() {
				selector.EXPECT().
					Select("USD", "XYZ").
					Return(models.WidgetState{}, fmt.Errorf("%w: XYZ", services.ErrUnknownCurrency))
			},
			wantCode: http.StatusBadRequest,
			wantBody: map[string]interface{}{"error": "Unknown currency"},
		},
		{
			name: "unexpected_error",
			body: `{"from":"USD","to":"EUR"}`,
			mockSetup: func() {
				selector.EXPECT().
					Select("USD", "EUR").
					Return(models.WidgetState{}, errors.New("boom"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]interface{}{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/selection", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()
			require.Equal(t, tt.wantCode, res.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			if tt.wantBody != nil {
				require.Equal(t, tt.wantBody, body)
				return
			}
			require.Equal(t, "EUR", body["from"])
			require.Equal(t, "INR", body["to"])
		})
	}
}
