package facades

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fake upstream observer ---
type fakeObserver struct {
	mu    sync.Mutex
	calls []string
	codes []int
}

func (o *fakeObserver) ObserveUpstream(endpoint string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, endpoint)
	o.codes = append(o.codes, status)
}

func newUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// --- Tests ---
func TestGetCurrencies(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/currencies", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"EUR":"Euro","USD":"United States Dollar"}`))
	})
	observer := &fakeObserver{}
	facade := NewExchangeRatesHTTPFacade(srv.Client(), srv.URL+"/", observer)

	currencies, err := facade.GetCurrencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"EUR": "Euro", "USD": "United States Dollar"}, currencies)
	assert.Equal(t, []string{EndpointCurrencies}, observer.calls)
	assert.Equal(t, []int{http.StatusOK}, observer.codes)
}

func TestGetCurrencies_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "non_2xx_status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"message":"down"}`))
			},
			wantErr: ErrUnexpectedStatus,
		},
		{
			name: "malformed_body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`["USD","EUR"]`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newUpstream(t, tt.handler)
			facade := NewExchangeRatesHTTPFacade(srv.Client(), srv.URL, nil)

			currencies, err := facade.GetCurrencies(context.Background())
			assert.Error(t, err)
			assert.Nil(t, currencies)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}

func TestGetCurrencies_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	observer := &fakeObserver{}
	facade := NewExchangeRatesHTTPFacade(nil, url, observer)

	currencies, err := facade.GetCurrencies(context.Background())
	assert.Error(t, err)
	assert.Nil(t, currencies)
	assert.Equal(t, []int{0}, observer.codes)
}

func TestConvert(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("amount"))
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "EUR", r.URL.Query().Get("to"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"amount":100.0,"base":"USD","date":"2026-10-16","rates":{"EUR":92.5}}`))
	})
	facade := NewExchangeRatesHTTPFacade(srv.Client(), srv.URL, nil)

	converted, err := facade.Convert(context.Background(), "100", "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, 92.5, converted)
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "not_found_status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"rates":{"EUR":92.5}}`))
			},
			wantErr: ErrUnexpectedStatus,
		},
		{
			name: "missing_target_key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"rates":{"GBP":80.1}}`))
			},
			wantErr: ErrRateNotFound,
		},
		{
			name: "missing_rates_field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"message":"not found"}`))
			},
			wantErr: ErrRateNotFound,
		},
		{
			name: "malformed_body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newUpstream(t, tt.handler)
			facade := NewExchangeRatesHTTPFacade(srv.Client(), srv.URL, nil)

			converted, err := facade.Convert(context.Background(), "100", "USD", "EUR")
			assert.Error(t, err)
			assert.Equal(t, float64(0), converted)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}

func TestConvert_CanceledContext(t *testing.T) {
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates":{"EUR":92.5}}`))
	})
	facade := NewExchangeRatesHTTPFacade(srv.Client(), srv.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := facade.Convert(ctx, "100", "USD", "EUR")
	assert.ErrorIs(t, err, context.Canceled)
}
