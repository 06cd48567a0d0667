package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

// Upstream endpoint names, used as log and metric labels.
const (
	EndpointCurrencies = "currencies"
	EndpointLatest     = "latest"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrRateNotFound     = errors.New("rate not found in response")
)

// UpstreamObserver records the latency of every upstream request.
type UpstreamObserver interface {
	ObserveUpstream(endpoint string, status int, elapsed time.Duration)
}

// latestResponse is the body of GET /latest.
type latestResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// ExchangeRatesHTTPFacade reads currencies and converts amounts using a
// Frankfurter compatible HTTP API.
type ExchangeRatesHTTPFacade struct {
	client   *http.Client
	baseURL  string
	observer UpstreamObserver
}

// NewExchangeRatesHTTPFacade creates a facade for the API rooted at baseURL.
// observer may be nil.
func NewExchangeRatesHTTPFacade(client *http.Client, baseURL string, observer UpstreamObserver) *ExchangeRatesHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &ExchangeRatesHTTPFacade{
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		observer: observer,
	}
}

// GetCurrencies fetches the supported currencies as code -> display name.
func (f *ExchangeRatesHTTPFacade) GetCurrencies(ctx context.Context) (map[string]string, error) {
	var currencies map[string]string
	if err := f.getJSON(ctx, EndpointCurrencies, nil, &currencies); err != nil {
		logger.Log.Errorw("failed to fetch currency list", "error", err)
		return nil, err
	}
	if currencies == nil {
		currencies = map[string]string{}
	}
	return currencies, nil
}

// Convert converts amount from one currency to another at the latest rate
// and returns the converted amount.
func (f *ExchangeRatesHTTPFacade) Convert(ctx context.Context, amount, fromCurrency, toCurrency string) (float64, error) {
	query := url.Values{}
	query.Set("amount", amount)
	query.Set("from", fromCurrency)
	query.Set("to", toCurrency)

	var resp latestResponse
	if err := f.getJSON(ctx, EndpointLatest, query, &resp); err != nil {
		logger.Log.Errorw("failed to fetch exchange rate",
			"amount", amount, "from", fromCurrency, "to", toCurrency, "error", err)
		return 0, err
	}

	converted, ok := resp.Rates[toCurrency]
	if !ok {
		logger.Log.Errorw("exchange rate missing in response",
			"from", fromCurrency, "to", toCurrency, "rates", resp.Rates)
		return 0, fmt.Errorf("%w: %s", ErrRateNotFound, toCurrency)
	}

	return converted, nil
}

func (f *ExchangeRatesHTTPFacade) getJSON(ctx context.Context, endpoint string, query url.Values, dst interface{}) error {
	target := f.baseURL + "/" + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		f.observe(endpoint, 0, start)
		return err
	}
	defer resp.Body.Close()
	f.observe(endpoint, resp.StatusCode, start)

	logger.Log.Debugw("upstream response",
		"endpoint", endpoint, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (f *ExchangeRatesHTTPFacade) observe(endpoint string, status int, start time.Time) {
	if f.observer != nil {
		f.observer.ObserveUpstream(endpoint, status, time.Since(start))
	}
}
